// Copyright 2026 The jsgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dedup

import (
	"cmp"
	"io"
	"log/slog"
	"slices"
	"strconv"
)

const (
	// DefaultMinLength is the default length that the text of a node must
	// exceed for it to be considered for hoisting.
	DefaultMinLength = 20

	// DefaultMinSaving is the default threshold for the product of the
	// number of occurrences and the text length. Groups at or below it are
	// not hoisted.
	DefaultMinSaving = 10
)

// Config holds the parameters of Pull.
type Config struct {
	// Prefix is prepended to the sequence number of each binding to form
	// its name.
	Prefix string

	// LongestFirst processes groups in order of decreasing text length
	// instead of increasing length.
	LongestFirst bool

	// MinLength is the length the text of a node must exceed to be
	// considered at all. Lengths are counted in UTF-16 code units.
	MinLength int

	// MinSaving is the value that count×length of a group must exceed for
	// the group to be hoisted.
	MinSaving int

	// Logger receives a debug record for every group considered. It may
	// be nil.
	Logger *slog.Logger
}

// Pull hoists repeated array and object nodes of the tree at root into
// bindings and returns the bindings, in the order they were declared.
// The tree is modified in place. Pull must be called on the root of a
// tree, which must not be an array or object itself.
func Pull[N comparable](t Tree[N], root N, cfg *Config) []Binding[N] {
	if cfg == nil {
		cfg = &Config{MinLength: DefaultMinLength, MinSaving: DefaultMinSaving}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	groups := FindOccurrences(t, root, cfg.MinLength)

	texts := make([]string, 0, len(groups))
	for text := range groups {
		texts = append(texts, text)
	}
	slices.SortFunc(texts, func(a, b string) int {
		c := cmp.Compare(textLen(a), textLen(b))
		if cfg.LongestFirst {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a, b)
		}
		return c
	})

	// consumed holds the nodes of all subtrees that were replaced. Their
	// occurrences are purged from groups that have not been processed yet.
	consumed := map[N]bool{}

	var bindings []Binding[N]
	for _, text := range texts {
		occs := slices.DeleteFunc(groups[text], func(o *Occurrence[N]) bool {
			return consumed[o.Node]
		})
		count, length := len(occs), textLen(text)
		if count <= 1 || count*length <= cfg.MinSaving {
			log.Debug("dedup: skip", "count", count, "length", length)
			continue
		}

		name := cfg.Prefix + strconv.Itoa(len(bindings)+1)
		bindings = append(bindings, Binding[N]{Name: name, Value: t.Clone(occs[0].Node)})

		for _, o := range occs {
			t.Replace(o.Parent(), o.Node, t.Ref(name))
			markConsumed(t, o.Node, consumed)
		}
		log.Debug("dedup: hoist", "name", name, "count", count, "length", length)
	}

	if len(bindings) > 0 {
		t.Declare(root, bindings)
	}
	return bindings
}

func markConsumed[N comparable](t Tree[N], n N, consumed map[N]bool) {
	consumed[n] = true
	for _, c := range t.Children(n) {
		markConsumed(t, c, consumed)
	}
}

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

import "slices"

// An Occurrence records a candidate node and the path to reach it.
type Occurrence[N comparable] struct {
	Node N

	// Ancestors lists the ancestors of Node from the root down to, but
	// excluding, Node itself.
	Ancestors []N
}

// Parent returns the direct parent of the node. It panics for an
// occurrence of the root.
func (o *Occurrence[N]) Parent() N {
	return o.Ancestors[len(o.Ancestors)-1]
}

// textLen returns the length of s in UTF-16 code units, the length a
// JavaScript string holding s would report.
func textLen(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

// FindOccurrences groups the array and object nodes of the tree at root by
// their serialized text. Nodes whose text is not longer than minLen UTF-16
// code units are ignored. Occurrences within a group appear in pre-order.
func FindOccurrences[N comparable](t Tree[N], root N, minLen int) map[string][]*Occurrence[N] {
	groups := map[string][]*Occurrence[N]{}
	var stack []N

	var walk func(n N)
	walk = func(n N) {
		if k := t.Kind(n); k == Array || k == Object {
			if text := t.Text(n); textLen(text) > minLen {
				groups[text] = append(groups[text], &Occurrence[N]{
					Node:      n,
					Ancestors: slices.Clone(stack),
				})
			}
		}
		stack = append(stack, n)
		for _, c := range t.Children(n) {
			walk(c)
		}
		stack = stack[:len(stack)-1]
	}
	walk(root)

	return groups
}

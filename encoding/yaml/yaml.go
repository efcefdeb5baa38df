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

// Package yaml decodes YAML documents into values accepted by
// [gocodec.Encode]. Mappings keep the order of their keys. Aliases are
// expanded, so a value referenced through an anchor more than once
// appears more than once in the result.
package yaml

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"jsgen.dev/go/encoding/gocodec"
	"jsgen.dev/go/internal/source"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

// Decode decodes the YAML documents in src. A single document yields its
// value, a stream of several documents yields an []any of their values,
// and an empty input yields nil.
func Decode(filename string, src any) (any, error) {
	d := NewDecoder(filename, src)
	a := []any{}
	for {
		v, err := d.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	switch len(a) {
	case 0:
		return nil, nil
	case 1:
		return a[0], nil
	}
	return a, nil
}

// A Decoder reads a stream of YAML documents.
type Decoder struct {
	tokFile   *token.File
	dec       *yaml.Decoder
	decodeErr error

	// expanding holds the aliases being expanded, to detect cycles.
	expanding map[*yaml.Node]bool
}

// NewDecoder returns a decoder for the YAML documents in src. The
// filename is used for error messages and for reading src if it is nil.
func NewDecoder(filename string, src any) *Decoder {
	b, err := source.ReadAll(filename, src)
	tokFile := token.NewFile(filename, len(b))
	tokFile.SetLinesForContent(b)
	return &Decoder{
		tokFile:   tokFile,
		dec:       yaml.NewDecoder(bytes.NewReader(b)),
		decodeErr: err,
		expanding: map[*yaml.Node]bool{},
	}
}

// Decode returns the value of the next document. It returns io.EOF once no
// more documents are available.
func (d *Decoder) Decode() (any, error) {
	if err := d.decodeErr; err != nil {
		return nil, err
	}
	var yn yaml.Node
	if err := d.dec.Decode(&yn); err != nil {
		if err == io.EOF {
			// Any further Decode calls must return EOF to avoid an endless loop.
			d.decodeErr = io.EOF
			return nil, io.EOF
		}
		// The syntax errors of yaml.v3 are opaque strings that only
		// sometimes carry a line number.
		e := err.Error()
		pos := token.NoPos
		if s, ok := strings.CutPrefix(e, "yaml: line "); ok {
			// From "yaml: line 3: some issue" to "foo.yaml:3: some issue".
			var line int
			if _, err := fmt.Sscanf(s, "%d:", &line); err == nil {
				pos = d.linePos(line)
			}
			e = d.tokFile.Name() + ":" + s
		} else if s, ok := strings.CutPrefix(e, "yaml:"); ok {
			e = d.tokFile.Name() + ":" + s
		} else {
			return nil, err
		}
		err = errors.Newf(pos, "%s", e)
		// Any further Decode calls repeat this error.
		d.decodeErr = err
		return nil, err
	}
	return d.extract(&yn)
}

func (d *Decoder) extract(yn *yaml.Node) (any, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if n := len(yn.Content); n != 1 {
			return nil, d.posErrorf(yn, "yaml document nodes are meant to have one content node but have %d", n)
		}
		return d.extract(yn.Content[0])
	case yaml.SequenceNode:
		return d.sequence(yn)
	case yaml.MappingNode:
		obj := gocodec.NewObject()
		if err := d.insertMap(yn, obj, false); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.ScalarNode:
		return d.scalar(yn)
	case yaml.AliasNode:
		return d.alias(yn)
	default:
		return nil, d.posErrorf(yn, "unknown yaml node kind: %d", yn.Kind)
	}
}

func (d *Decoder) sequence(yn *yaml.Node) (any, error) {
	a := make([]any, 0, len(yn.Content))
	for _, c := range yn.Content {
		v, err := d.extract(c)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	return a, nil
}

// insertMap adds the entries of the mapping node yn to obj. Merged entries
// do not override existing keys.
func (d *Decoder) insertMap(yn *yaml.Node, obj *gocodec.Object, merging bool) error {
	for i := 0; i+1 < len(yn.Content); i += 2 {
		yk, yv := yn.Content[i], yn.Content[i+1]
		if isMerge(yk) {
			if err := d.merge(yv, obj); err != nil {
				return err
			}
			continue
		}
		key, err := d.label(yk)
		if err != nil {
			return err
		}
		if _, ok := obj.Get(key); ok && merging {
			continue
		}
		v, err := d.extract(yv)
		if err != nil {
			return err
		}
		obj.Set(key, v)
	}
	return nil
}

func (d *Decoder) merge(yn *yaml.Node, obj *gocodec.Object) error {
	switch yn.Kind {
	case yaml.MappingNode:
		return d.insertMap(yn, obj, true)
	case yaml.AliasNode:
		if d.expanding[yn] {
			return d.posErrorf(yn, "anchor %q value contains itself", yn.Value)
		}
		d.expanding[yn] = true
		defer delete(d.expanding, yn)
		return d.merge(yn.Alias, obj)
	case yaml.SequenceNode:
		// Earlier maps take precedence.
		for _, c := range yn.Content {
			if err := d.merge(c, obj); err != nil {
				return err
			}
		}
		return nil
	default:
		return d.posErrorf(yn, "map merge requires map or sequence of maps as the value")
	}
}

func isMerge(yn *yaml.Node) bool {
	return yn.Kind == yaml.ScalarNode && yn.Value == "<<" &&
		(yn.Tag == "" || yn.Tag == "!" || yn.ShortTag() == mergeTag)
}

func (d *Decoder) label(yn *yaml.Node) (string, error) {
	switch yn.Kind {
	case yaml.ScalarNode:
		return yn.Value, nil
	case yaml.AliasNode:
		if yn.Alias.Kind != yaml.ScalarNode {
			return "", d.posErrorf(yn, "invalid map key: %v", yn.Alias.ShortTag())
		}
		return yn.Alias.Value, nil
	}
	return "", d.posErrorf(yn, "invalid map key: %v", yn.ShortTag())
}

func (d *Decoder) alias(yn *yaml.Node) (any, error) {
	if d.expanding[yn] {
		return nil, d.posErrorf(yn, "anchor %q value contains itself", yn.Value)
	}
	d.expanding[yn] = true
	defer delete(d.expanding, yn)
	return d.extract(yn.Alias)
}

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	binaryTag    = "!!binary"
	mergeTag     = "!!merge"
)

// rxAnyOctalYaml11 uses the implicit tag resolution regular expression for base-8 integers
// from YAML's 1.1 spec, but including the 8 and 9 digits which aren't valid for octal integers.
var rxAnyOctalYaml11 = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[-+]?0[0-9_]+$`)
})

func (d *Decoder) scalar(yn *yaml.Node) (any, error) {
	tag := yn.ShortTag()
	// An untagged value like 01289 is resolved as a float by yaml.v3, but
	// most decoders treat it as a string.
	if yn.Style&yaml.TaggedStyle == 0 && tag == floatTag && rxAnyOctalYaml11().MatchString(yn.Value) {
		tag = strTag
	}
	switch tag {
	case strTag, timestampTag:
		return yn.Value, nil

	case binaryTag:
		data, err := base64.StdEncoding.DecodeString(yn.Value)
		if err != nil {
			return nil, d.posErrorf(yn, "!!binary value contains invalid base64 data")
		}
		return data, nil

	case boolTag:
		switch yn.Value {
		case "true", "True", "TRUE":
			return true, nil
		}
		return false, nil

	case intTag:
		// Octal values like 0755 follow YAML 1.1, as yaml.v3 does.
		value := yn.Value
		s, neg := strings.CutPrefix(strings.TrimPrefix(value, "+"), "-")
		if len(s) > 1 && s[0] == '0' && s[1] <= '9' {
			s = "0o" + s[1:]
		}
		if neg {
			s = "-" + s
		}
		i, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, d.posErrorf(yn, "cannot decode %q as %s", value, tag)
		}
		return i, nil

	case floatTag:
		switch value := yn.Value; value {
		case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
			return math.Inf(1), nil
		case "-.inf", "-.Inf", "-.INF":
			return math.Inf(-1), nil
		case ".nan", ".NaN", ".NAN":
			return math.NaN(), nil
		default:
			value = strings.ReplaceAll(strings.TrimPrefix(value, "+"), "_", "")
			var info literal.NumInfo
			if err := literal.ParseNum(value, &info); err != nil || info.Base() != 10 {
				return nil, d.posErrorf(yn, "cannot decode %q as %s", yn.Value, tag)
			}
			return json.Number(value), nil
		}

	case nullTag:
		return nil, nil
	}
	return nil, d.posErrorf(yn, "cannot unmarshal tag %q", tag)
}

func (d *Decoder) posErrorf(yn *yaml.Node, format string, args ...any) error {
	return errors.Newf(d.linePos(yn.Line), "%s:%d: %s", d.tokFile.Name(), yn.Line, fmt.Sprintf(format, args...))
}

// linePos returns the position of the start of the given line, or NoPos if
// the line is out of range.
func (d *Decoder) linePos(line int) token.Pos {
	if line < 1 || line > d.tokFile.LineCount() {
		return token.NoPos
	}
	return d.tokFile.LineStart(line)
}

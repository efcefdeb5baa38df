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

package gocodec

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// An Object is a mapping that retains the insertion order of its keys.
type Object struct {
	Fields []Field
}

// A Field is a key-value pair of an Object.
type Field struct {
	Key   string
	Value any
}

// NewObject returns an object with the given fields. Later fields replace
// earlier fields with the same key.
func NewObject(fields ...Field) *Object {
	o := &Object{}
	for _, f := range fields {
		o.Set(f.Key, f.Value)
	}
	return o
}

// Set sets the value for key. Setting an existing key replaces its value
// in place, retaining its original position.
func (o *Object) Set(key string, value any) {
	for i, f := range o.Fields {
		if f.Key == key {
			o.Fields[i].Value = value
			return
		}
	}
	o.Fields = append(o.Fields, Field{key, value})
}

// Get reports the value for key and whether it exists.
func (o *Object) Get(key string) (value any, ok bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields of o.
func (o *Object) Len() int { return len(o.Fields) }

// MarshalJSON implements json.Marshaler, retaining key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// A Func is a function given by its source.
type Func struct {
	Name   string   // empty for anonymous functions
	Params []string // parameter names
	Body   string   // source of the statements of the body
}

// String returns the source of f as a function expression.
func (f *Func) String() string {
	var b strings.Builder
	b.WriteString("function")
	if f.Name != "" {
		b.WriteString(" ")
		b.WriteString(f.Name)
	}
	b.WriteString("(")
	b.WriteString(strings.Join(f.Params, ","))
	b.WriteString("){")
	b.WriteString(f.Body)
	b.WriteString("}")
	return b.String()
}

// MarshalJSON renders f as its source text.
func (f *Func) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined represents the JavaScript value undefined.
var Undefined UndefinedType

func (UndefinedType) String() string { return "undefined" }

// A RegExp is a JavaScript regular expression literal.
type RegExp struct {
	Pattern string
	Flags   string
}

// String returns the literal form of r.
func (r RegExp) String() string {
	p := escapeSlashes(r.Pattern)
	if p == "" {
		p = "(?:)"
	}
	return "/" + p + "/" + r.Flags
}

// MarshalJSON renders r as its literal text.
func (r RegExp) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func fromGoRegexp(re *regexp.Regexp) RegExp {
	return RegExp{Pattern: re.String()}
}

// escapeSlashes escapes the forward slashes in pattern that would otherwise
// terminate the literal.
func escapeSlashes(pattern string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			i++
			c = pattern[i]
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			b.WriteByte('\\')
		case c == '\n':
			b.WriteString(`\n`)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// parseRegExp splits a regular expression literal into its parts.
func parseRegExp(lit string) (RegExp, bool) {
	i := strings.LastIndexByte(lit, '/')
	if len(lit) < 2 || lit[0] != '/' || i <= 0 {
		return RegExp{}, false
	}
	return RegExp{Pattern: unescapeSlashes(lit[1:i]), Flags: lit[i+1:]}, true
}

func unescapeSlashes(pattern string) string {
	if !strings.Contains(pattern, `\/`) {
		return pattern
	}
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			i++
			if pattern[i] != '/' {
				b.WriteByte(c)
			}
			c = pattern[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

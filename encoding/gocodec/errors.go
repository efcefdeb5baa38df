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
	"encoding/json"
	"fmt"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/token"
)

var (
	// ErrUnsupportedValue is matched by errors returned when a Go value
	// cannot be encoded.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnsupportedNode is matched by errors returned when a node cannot
	// be decoded.
	ErrUnsupportedNode = errors.New("unsupported node")
)

// An UnsupportedValueError is returned by Encode when asked to encode a
// value outside the supported subset.
type UnsupportedValueError struct {
	Value any
	str   string
}

func unsupportedValue(v any) *UnsupportedValueError {
	return &UnsupportedValueError{Value: v, str: render(v)}
}

// render returns the JSON representation of v, if it has one.
func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func (e *UnsupportedValueError) Error() string {
	return "gocodec: unsupported value " + e.str
}

func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

// An UnsupportedNodeError is returned by Decode when asked to decode a node
// that does not represent a value.
type UnsupportedNodeError struct {
	Node   ast.Node
	Reason string
}

func (e *UnsupportedNodeError) Error() string {
	desc := fmt.Sprintf("%T", e.Node)
	if b, err := format.Node(e.Node); err == nil {
		desc = string(b)
	}
	msg := "gocodec: unsupported node " + desc
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnsupportedNodeError) Is(target error) bool {
	return target == ErrUnsupportedNode
}

// Position reports the position of the offending node.
func (e *UnsupportedNodeError) Position() token.Pos {
	if e.Node == nil {
		return token.NoPos
	}
	return e.Node.Pos()
}

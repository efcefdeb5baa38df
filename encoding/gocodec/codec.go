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

// Package gocodec converts Go values to JavaScript syntax trees and back.
//
// The supported values are those of the JSON data model, extended with
// functions, undefined, and regular expressions:
//
//	nil                      null
//	bool                     true, false
//	integer and float kinds  number
//	json.Number, *apd.Decimal, *big.Int
//	string                   string
//	slices and arrays        array
//	*Object                  object, in insertion order
//	maps with string keys    object, in sorted key order
//	structs                  object, using json field tags
//	*Func, Func              function expression
//	Undefined                undefined
//	RegExp, *regexp.Regexp   regular expression literal
//
// Decoding maps numbers to float64, objects to *Object, and arrays to []any.
package gocodec

import (
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/parser"
	"jsgen.dev/go/js/token"
)

// An Option configures Encode.
type Option func(e *encoder)

// Canonical causes the keys of all objects to be emitted in sorted order,
// so that equal data always yields the same tree regardless of the order in
// which keys were inserted.
func Canonical() Option {
	return func(e *encoder) { e.canonical = true }
}

// Clone returns a copy of x obtained by decoding and re-encoding it.
func Clone(x ast.Expr) (ast.Expr, error) {
	v, err := Decode(x)
	if err != nil {
		return nil, err
	}
	return Encode(v)
}

// FuncBody returns the statements of the body of the function whose source
// is given.
func FuncBody(source string) ([]ast.Stmt, error) {
	fn, err := parseFunc(source)
	if err != nil {
		return nil, err
	}
	return fn.Body.List, nil
}

// parseFunc parses the source of a function expression. The negation
// forces the parser to treat a function statement as an expression.
func parseFunc(source string) (*ast.FuncLit, error) {
	f, err := parser.ParseFile("function", "!"+source)
	if err != nil {
		return nil, err
	}
	if len(f.Stmts) == 1 {
		if s, ok := f.Stmts[0].(*ast.ExprStmt); ok {
			if u, ok := s.X.(*ast.UnaryExpr); ok && u.Op == token.NOT {
				if fn, ok := u.X.(*ast.FuncLit); ok {
					if fn.Name != nil && fn.Name.Name == "anonymous" {
						fn.Name = nil
					}
					return fn, nil
				}
			}
		}
	}
	return nil, unsupportedValue(source)
}

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

// Package format implements standard formatting of JavaScript source.
//
// By default output is compact: no whitespace is emitted other than where
// it is needed to separate tokens. The output is deterministic and depends
// only on the structure of the tree, never on position information, so that
// printed text can serve as a structural fingerprint.
package format

import (
	"fmt"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/parser"
)

// An Option sets behavior of the formatter.
type Option func(c *config)

// Beautify causes the output to be indented and spaced for readability.
func Beautify() Option {
	return func(c *config) { c.beautify = true }
}

// IndentWidth sets the number of spaces used per indentation level in
// beautified output. The default is 4.
func IndentWidth(n int) Option {
	return func(c *config) { c.indent = n }
}

// Source formats the given JavaScript source text. The output is
// terminated by a newline if it is non-empty.
func Source(b []byte, opts ...Option) ([]byte, error) {
	f, err := parser.ParseFile("", b)
	if err != nil {
		return nil, err
	}
	out, err := Node(f, opts...)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}

// Node formats node in canonical style. Supported node types are
// *ast.File, []ast.Stmt, and any ast.Expr or ast.Stmt.
func Node(node ast.Node, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	return cfg.fprint(node)
}

// Stmts formats a list of statements in canonical style.
func Stmts(list []ast.Stmt, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	return cfg.fprint(list)
}

// String is like Node but returns a string. Errors are reported in the
// result, which makes it suitable for debugging and logging.
func String(node ast.Node, opts ...Option) string {
	b, err := Node(node, opts...)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(b)
}

type config struct {
	beautify bool
	indent   int
}

func newConfig(opts []Option) *config {
	cfg := &config{indent: 4}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func (cfg *config) fprint(node any) (b []byte, err error) {
	f := &formatter{cfg: cfg}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(formatError)
			if !ok {
				panic(r)
			}
			b, err = nil, e
		}
	}()
	switch x := node.(type) {
	case *ast.File:
		f.stmtList(x.Stmts, true)
	case []ast.Stmt:
		f.stmtList(x, true)
	case ast.Expr:
		f.expr(x, lowestPrec)
	case ast.Stmt:
		f.stmt(x)
	default:
		return nil, fmt.Errorf("js/format: unsupported node type %T", node)
	}
	return f.buf, nil
}

type formatError struct{ msg string }

func (e formatError) Error() string { return "js/format: " + e.msg }

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

// Package fold partially evaluates constant JavaScript expressions.
package fold

import (
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/ast/astutil"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/parser"
	"jsgen.dev/go/js/simplify"
	"jsgen.dev/go/js/token"
)

// placeholder is the name of the variable that holds the expression being
// folded in the synthetic program handed to the simplifier.
const placeholder = "_bogus"

// A Simplifier rewrites a program into an equivalent, simpler one.
type Simplifier interface {
	Simplify(f *ast.File) *ast.File
}

type Option func(*options)

type options struct {
	simplifier Simplifier
}

// WithSimplifier sets the simplifier used by Constant. The default is
// simplify.New().
func WithSimplifier(s Simplifier) Option {
	return func(o *options) { o.simplifier = s }
}

// Constant returns x with all constant subexpressions folded. Literal
// values are returned as is. Parts of x that depend on free variables are
// left intact, so that foo+(2+2) becomes foo+4.
//
// Constant does not modify x.
func Constant(x ast.Expr, opts ...Option) ast.Expr {
	if _, ok := x.(*ast.BasicLit); ok {
		return x
	}
	o := options{simplifier: simplify.New()}
	for _, f := range opts {
		f(&o)
	}

	f := &ast.File{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.AssignExpr{
			Lhs: ast.NewIdent(placeholder),
			Tok: token.ASSIGN,
			Rhs: astutil.Clone(x),
		}},
	}}
	f = o.simplifier.Simplify(f)

	// Fall back to x if the simplifier changed the shape of the program.
	if len(f.Stmts) == 1 {
		if s, ok := f.Stmts[0].(*ast.ExprStmt); ok {
			if a, ok := s.X.(*ast.AssignExpr); ok {
				return a.Rhs
			}
		}
	}
	return x
}

// ParseExpression parses a single JavaScript expression. The source is
// parsed as the initializer of a variable declaration so that object
// literals are not mistaken for blocks.
func ParseExpression(src string) (ast.Expr, error) {
	f, err := parser.ParseFile("", "var "+placeholder+" = ("+src+")")
	if err != nil {
		return nil, err
	}
	if len(f.Stmts) == 1 {
		if d, ok := f.Stmts[0].(*ast.VarDecl); ok && len(d.Specs) == 1 {
			if p, ok := d.Specs[0].Value.(*ast.ParenExpr); ok {
				return p.X, nil
			}
		}
	}
	return nil, errors.Newf(token.NoPos, "invalid expression %q", src)
}

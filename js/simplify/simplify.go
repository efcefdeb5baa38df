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

// Package simplify reduces constant subexpressions of JavaScript syntax
// trees.
//
// Numbers follow IEEE-754 double precision semantics as JavaScript does.
// String concatenation is never folded, nor are operations that would
// require converting a string to a number.
package simplify

import (
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/ast/astutil"
	"jsgen.dev/go/js/token"
)

// A Simplifier folds constant expressions.
type Simplifier struct {
	keepParens bool
}

// An Option configures a Simplifier.
type Option func(s *Simplifier)

// KeepParens retains parentheses around constant results.
func KeepParens() Option {
	return func(s *Simplifier) { s.keepParens = true }
}

// New returns a Simplifier configured with the given options.
func New(opts ...Option) *Simplifier {
	s := &Simplifier{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Simplify simplifies f in place and returns it.
func (s *Simplifier) Simplify(f *ast.File) *ast.File {
	astutil.Apply(f, nil, s.after)
	return f
}

// Expr returns a simplified version of x. Subtrees of x may be modified.
func (s *Simplifier) Expr(x ast.Expr) ast.Expr {
	return astutil.Apply(x, nil, s.after).(ast.Expr)
}

// Expr simplifies x with the default configuration.
func Expr(x ast.Expr) ast.Expr {
	return New().Expr(x)
}

func (s *Simplifier) after(c astutil.Cursor) bool {
	var r ast.Expr
	switch x := c.Node().(type) {
	case *ast.ParenExpr:
		if !s.keepParens && isLeaf(x.X) {
			r = x.X
		}

	case *ast.UnaryExpr:
		if isNegativeNumber(x) || isVoidZero(x) {
			break
		}
		if v, ok := constant(x.X); ok {
			if res, ok := unaryOp(x.Op, v); ok {
				r = res.expr()
			}
		}

	case *ast.BinaryExpr:
		r = binaryExpr(x)

	case *ast.CondExpr:
		if v, ok := constant(x.Cond); ok {
			if v.truthy() {
				r = x.X
			} else {
				r = x.Y
			}
		}
	}
	if r != nil {
		c.Replace(r)
	}
	return true
}

func binaryExpr(x *ast.BinaryExpr) ast.Expr {
	a, ok := constant(x.X)
	if !ok {
		return nil
	}
	switch x.Op {
	case token.LAND:
		if a.truthy() {
			return x.Y
		}
		return x.X
	case token.LOR:
		if a.truthy() {
			return x.X
		}
		return x.Y
	case token.NULLISH:
		if a.kind == nullKind || a.kind == undefinedKind {
			return x.Y
		}
		return x.X
	}
	b, ok := constant(x.Y)
	if !ok {
		return nil
	}
	if v, ok := binaryOp(x.Op, a, b); ok {
		return v.expr()
	}
	return nil
}

// isLeaf reports whether x never needs parentheses to be printed correctly
// in any operand position.
func isLeaf(x ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Ident, *ast.BasicLit, *ast.ArrayLit, *ast.ObjectLit, *ast.ParenExpr:
		return true
	case *ast.UnaryExpr:
		return isNegativeNumber(x) || isVoidZero(x)
	}
	return false
}

func isNegativeNumber(x *ast.UnaryExpr) bool {
	if x.Op != token.SUB {
		return false
	}
	switch y := x.X.(type) {
	case *ast.BasicLit:
		return y.Kind == token.NUMBER
	case *ast.Ident:
		return y.Name == "Infinity"
	}
	return false
}

func isVoidZero(x *ast.UnaryExpr) bool {
	lit, ok := x.X.(*ast.BasicLit)
	return x.Op == token.VOID && ok && lit.Kind == token.NUMBER && lit.Value == "0"
}

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

package astutil_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/ast/astutil"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/parser"
)

func TestApply(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		before func(astutil.Cursor) bool
		after  func(astutil.Cursor) bool
		out    string
	}{{
		name: "replace identifiers",
		in:   `x = [a, {k: a}, b];`,
		before: func(c astutil.Cursor) bool {
			if id, ok := c.Node().(*ast.Ident); ok && id.Name == "a" {
				c.Replace(ast.NewString("A"))
			}
			return true
		},
		out: `x=["A",{k:"A"},b];`,
	}, {
		name: "delete list elements",
		in:   `x = [1, null, 2, null]; f(null, 3);`,
		before: func(c astutil.Cursor) bool {
			if lit, ok := c.Node().(*ast.BasicLit); ok && lit.Value == "null" {
				c.Delete()
			}
			return true
		},
		out: `x=[1,2];f(3);`,
	}, {
		name: "delete statements",
		in:   `a; throw b; c;`,
		before: func(c astutil.Cursor) bool {
			if _, ok := c.Node().(*ast.ThrowStmt); ok {
				c.Delete()
			}
			return true
		},
		out: `a;c;`,
	}, {
		name: "skip subtree",
		in:   `x = [a, [a]];`,
		before: func(c astutil.Cursor) bool {
			switch n := c.Node().(type) {
			case *ast.ArrayLit:
				return c.Index() < 0
			case *ast.Ident:
				if n.Name == "a" {
					c.Replace(ast.NewIdent("z"))
				}
			}
			return true
		},
		out: `x=[z,[a]];`,
	}, {
		name: "post-order replacement",
		in:   `x = -(1);`,
		after: func(c astutil.Cursor) bool {
			if p, ok := c.Node().(*ast.ParenExpr); ok {
				c.Replace(p.X)
			}
			return true
		},
		out: `x=-1;`,
	}, {
		name: "stop early",
		in:   `a; b; c;`,
		after: func(c astutil.Cursor) bool {
			if id, ok := c.Node().(*ast.Ident); ok {
				c.Replace(ast.NewIdent(id.Name + id.Name))
				return id.Name != "b"
			}
			return true
		},
		out: `aa;bb;c;`,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := parser.ParseFile(tc.name, tc.in)
			qt.Assert(t, qt.IsNil(err))

			n := astutil.Apply(f, tc.before, tc.after)
			qt.Assert(t, qt.Equals(format.String(n), tc.out))
		})
	}
}

func TestApplyParent(t *testing.T) {
	x, err := parser.ParseExpr("p", `{a: [b]}`)
	qt.Assert(t, qt.IsNil(err))

	var chain []string
	astutil.Apply(x, func(c astutil.Cursor) bool {
		if id, ok := c.Node().(*ast.Ident); ok && id.Name == "b" {
			for p := c.Parent(); p != nil; p = p.Parent() {
				chain = append(chain, fmt.Sprintf("%T", p.Node()))
			}
		}
		return true
	}, nil)
	qt.Assert(t, qt.DeepEquals(chain, []string{"*ast.ArrayLit", "*ast.Property", "*ast.ObjectLit"}))
}

func TestApplyRoot(t *testing.T) {
	x := ast.NewIdent("a")
	n := astutil.Apply(x, func(c astutil.Cursor) bool {
		c.Replace(ast.NewIdent("b"))
		return true
	}, nil)
	qt.Assert(t, qt.Equals(format.String(n), "b"))
}

func TestDeleteOutsideList(t *testing.T) {
	x := &ast.ParenExpr{X: ast.NewIdent("a")}
	qt.Assert(t, qt.PanicMatches(func() {
		astutil.Apply(x, func(c astutil.Cursor) bool {
			if _, ok := c.Node().(*ast.Ident); ok {
				c.Delete()
			}
			return true
		}, nil)
	}, `Delete of \*ast.Ident node that is not part of a list`))
}

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

package astutil

import (
	"fmt"

	"jsgen.dev/go/js/ast"
)

// Replace replaces the direct child old of parent with new. Children are
// compared by identity. It reports whether old was found.
//
// It panics if new cannot occupy the slot of old, for instance when
// replacing an expression with a statement.
func Replace(parent, old, new ast.Node) bool {
	found := false
	walkSlots(parent, func(s slot) bool {
		if s.node == old {
			s.set(new)
			found = true
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of n. Position information is not copied, so
// that the result is independent of the source it was parsed from.
func Clone[T ast.Node](n T) T {
	x, _ := clone(n).(T)
	return x
}

func cloneList[T ast.Node](a []T) []T {
	if a == nil {
		return nil
	}
	b := make([]T, len(a))
	for i, x := range a {
		b[i] = Clone(x)
	}
	return b
}

func clone(n ast.Node) ast.Node {
	switch x := n.(type) {
	case nil:
		return nil

	case *ast.BadExpr:
		return &ast.BadExpr{}

	case *ast.Ident:
		if x == nil {
			return x
		}
		return &ast.Ident{Name: x.Name}

	case *ast.BasicLit:
		return &ast.BasicLit{Kind: x.Kind, Value: x.Value}

	case *ast.ArrayLit:
		return &ast.ArrayLit{Elts: cloneList(x.Elts)}

	case *ast.ObjectLit:
		return &ast.ObjectLit{Props: cloneList(x.Props)}

	case *ast.Property:
		return &ast.Property{Key: Clone(x.Key), Value: Clone(x.Value)}

	case *ast.Accessor:
		return &ast.Accessor{Kind: x.Kind, Key: Clone(x.Key), Func: Clone(x.Func)}

	case *ast.FuncLit:
		if x == nil {
			return x
		}
		return &ast.FuncLit{
			Name:   Clone(x.Name),
			Params: cloneList(x.Params),
			Body:   Clone(x.Body),
		}

	case *ast.ParenExpr:
		return &ast.ParenExpr{X: Clone(x.X)}

	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: Clone(x.X), Sel: Clone(x.Sel)}

	case *ast.IndexExpr:
		return &ast.IndexExpr{X: Clone(x.X), Index: Clone(x.Index)}

	case *ast.CallExpr:
		return &ast.CallExpr{Fun: Clone(x.Fun), Args: cloneList(x.Args)}

	case *ast.NewExpr:
		return &ast.NewExpr{Fun: Clone(x.Fun), Args: cloneList(x.Args)}

	case *ast.UnaryExpr:
		return &ast.UnaryExpr{Op: x.Op, X: Clone(x.X)}

	case *ast.BinaryExpr:
		return &ast.BinaryExpr{X: Clone(x.X), Op: x.Op, Y: Clone(x.Y)}

	case *ast.CondExpr:
		return &ast.CondExpr{Cond: Clone(x.Cond), X: Clone(x.X), Y: Clone(x.Y)}

	case *ast.AssignExpr:
		return &ast.AssignExpr{Lhs: Clone(x.Lhs), Tok: x.Tok, Rhs: Clone(x.Rhs)}

	case *ast.BadStmt:
		return &ast.BadStmt{}

	case *ast.EmptyStmt:
		return &ast.EmptyStmt{}

	case *ast.ExprStmt:
		return &ast.ExprStmt{X: Clone(x.X)}

	case *ast.VarDecl:
		return &ast.VarDecl{Tok: x.Tok, Specs: cloneList(x.Specs)}

	case *ast.VarSpec:
		if x == nil {
			return x
		}
		return &ast.VarSpec{Name: Clone(x.Name), Value: Clone(x.Value)}

	case *ast.ReturnStmt:
		return &ast.ReturnStmt{Result: Clone(x.Result)}

	case *ast.IfStmt:
		return &ast.IfStmt{Cond: Clone(x.Cond), Then: Clone(x.Then), Else: Clone(x.Else)}

	case *ast.BlockStmt:
		if x == nil {
			return x
		}
		return &ast.BlockStmt{List: cloneList(x.List)}

	case *ast.ThrowStmt:
		return &ast.ThrowStmt{X: Clone(x.X)}

	case *ast.File:
		return &ast.File{Filename: x.Filename, Stmts: cloneList(x.Stmts)}
	}
	panic(fmt.Sprintf("astutil: cannot clone node of type %T", n))
}

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

// A Cursor describes a node encountered during Apply.
// Information about the node and its parent is available
// from the Node, Parent, and Index methods.
//
// The methods Replace and Delete modify the underlying AST
// without invalidating the traversal.
type Cursor interface {
	// Node returns the current Node.
	Node() ast.Node

	// Parent returns the parent of the current Node.
	Parent() Cursor

	// Index reports the index of the current node in the slice of its
	// parent that contains it, or a value < 0 if the current node is not
	// part of a list.
	Index() int

	// Replace replaces the current Node with n.
	// The replacement node is not walked by Apply. It panics if n cannot
	// occupy the slot of the current node.
	Replace(n ast.Node)

	// Delete deletes the current Node from its containing list. It panics
	// if the current node is not part of a list.
	Delete()
}

type cursor struct {
	parent   Cursor
	node     ast.Node
	index    int
	set      func(ast.Node)
	deleted  bool
	replaced bool
}

func (c *cursor) Node() ast.Node { return c.node }
func (c *cursor) Parent() Cursor { return c.parent }
func (c *cursor) Index() int     { return c.index }

func (c *cursor) Replace(n ast.Node) {
	c.set(n)
	c.node = n
	c.replaced = true
}

func (c *cursor) Delete() {
	if c.index < 0 {
		panic(fmt.Sprintf("Delete of %T node that is not part of a list", c.node))
	}
	c.deleted = true
}

// Apply traverses a syntax tree recursively, starting with root,
// and calling before and after for each node as described below.
// Apply returns the syntax tree, possibly modified.
//
// If before is not nil, it is called for each node before its
// children are traversed (pre-order). If before returns false, no
// children are traversed, and after is not called for that node.
//
// If after is not nil, it is called for each node after its
// children are traversed (post-order). If after returns false,
// traversal is terminated and Apply returns immediately.
//
// Only fields that refer to AST nodes are considered children;
// i.e., token.Pos, strings, and other fields are not considered.
// Children of a node are traversed in the order in which they
// appear in the respective node's struct definition.
func Apply(node ast.Node, before, after func(Cursor) bool) ast.Node {
	root := &cursor{node: node, index: -1}
	root.set = func(n ast.Node) { root.node = n }
	apply(root, before, after)
	return root.node
}

func apply(c *cursor, before, after func(Cursor) bool) (ok bool) {
	if before != nil && !before(c) {
		return true
	}
	if c.replaced || c.deleted {
		return true
	}
	ok = true
	deleted := false
	walkSlots(c.node, func(s slot) bool {
		child := &cursor{parent: c, node: s.node, index: s.index, set: s.set}
		ok = apply(child, before, after)
		if child.deleted {
			deleted = true
			s.set(nil)
		}
		return ok
	})
	if deleted {
		compact(c.node)
	}
	if !ok {
		return false
	}
	if after != nil {
		return after(c)
	}
	return true
}

// A slot is a location in a parent node that holds a child node.
type slot struct {
	node  ast.Node
	index int // index within the containing list; or -1
	set   func(ast.Node)
}

// walkSlots calls fn for each non-nil child of n in source order until fn
// returns false.
func walkSlots(n ast.Node, fn func(s slot) bool) {
	one := func(child ast.Node, set func(ast.Node)) bool {
		if isNil(child) {
			return true
		}
		return fn(slot{node: child, index: -1, set: set})
	}

	switch x := n.(type) {
	case *ast.BadExpr, *ast.Ident, *ast.BasicLit, *ast.BadStmt, *ast.EmptyStmt:

	case *ast.ArrayLit:
		exprList(x.Elts, fn)

	case *ast.ObjectLit:
		for i, p := range x.Props {
			if !fn(slot{node: p, index: i, set: func(n ast.Node) { x.Props[i] = asProp(n) }}) {
				return
			}
		}

	case *ast.Property:
		_ = one(x.Key, func(n ast.Node) { x.Key = asLabel(n) }) &&
			one(x.Value, func(n ast.Node) { x.Value = asExpr(n) })

	case *ast.Accessor:
		_ = one(x.Key, func(n ast.Node) { x.Key = asLabel(n) }) &&
			one(x.Func, func(n ast.Node) { x.Func = n.(*ast.FuncLit) })

	case *ast.FuncLit:
		if !one(x.Name, func(n ast.Node) { x.Name = asIdent(n) }) {
			return
		}
		for i, p := range x.Params {
			if !fn(slot{node: p, index: i, set: func(n ast.Node) { x.Params[i] = asIdent(n) }}) {
				return
			}
		}
		one(x.Body, func(n ast.Node) { x.Body = n.(*ast.BlockStmt) })

	case *ast.ParenExpr:
		one(x.X, func(n ast.Node) { x.X = asExpr(n) })

	case *ast.SelectorExpr:
		_ = one(x.X, func(n ast.Node) { x.X = asExpr(n) }) &&
			one(x.Sel, func(n ast.Node) { x.Sel = asIdent(n) })

	case *ast.IndexExpr:
		_ = one(x.X, func(n ast.Node) { x.X = asExpr(n) }) &&
			one(x.Index, func(n ast.Node) { x.Index = asExpr(n) })

	case *ast.CallExpr:
		if one(x.Fun, func(n ast.Node) { x.Fun = asExpr(n) }) {
			exprList(x.Args, fn)
		}

	case *ast.NewExpr:
		if one(x.Fun, func(n ast.Node) { x.Fun = asExpr(n) }) {
			exprList(x.Args, fn)
		}

	case *ast.UnaryExpr:
		one(x.X, func(n ast.Node) { x.X = asExpr(n) })

	case *ast.BinaryExpr:
		_ = one(x.X, func(n ast.Node) { x.X = asExpr(n) }) &&
			one(x.Y, func(n ast.Node) { x.Y = asExpr(n) })

	case *ast.CondExpr:
		_ = one(x.Cond, func(n ast.Node) { x.Cond = asExpr(n) }) &&
			one(x.X, func(n ast.Node) { x.X = asExpr(n) }) &&
			one(x.Y, func(n ast.Node) { x.Y = asExpr(n) })

	case *ast.AssignExpr:
		_ = one(x.Lhs, func(n ast.Node) { x.Lhs = asExpr(n) }) &&
			one(x.Rhs, func(n ast.Node) { x.Rhs = asExpr(n) })

	case *ast.ExprStmt:
		one(x.X, func(n ast.Node) { x.X = asExpr(n) })

	case *ast.VarDecl:
		for i, s := range x.Specs {
			if !fn(slot{node: s, index: i, set: func(n ast.Node) { x.Specs[i], _ = n.(*ast.VarSpec) }}) {
				return
			}
		}

	case *ast.VarSpec:
		_ = one(x.Name, func(n ast.Node) { x.Name = asIdent(n) }) &&
			one(x.Value, func(n ast.Node) { x.Value = asExpr(n) })

	case *ast.ReturnStmt:
		one(x.Result, func(n ast.Node) { x.Result = asExpr(n) })

	case *ast.IfStmt:
		_ = one(x.Cond, func(n ast.Node) { x.Cond = asExpr(n) }) &&
			one(x.Then, func(n ast.Node) { x.Then = asStmt(n) }) &&
			one(x.Else, func(n ast.Node) { x.Else = asStmt(n) })

	case *ast.BlockStmt:
		stmtList(x.List, fn)

	case *ast.ThrowStmt:
		one(x.X, func(n ast.Node) { x.X = asExpr(n) })

	case *ast.File:
		stmtList(x.Stmts, fn)

	default:
		panic(fmt.Sprintf("astutil: unexpected node type %T", n))
	}
}

func exprList(a []ast.Expr, fn func(slot) bool) {
	for i, e := range a {
		if !fn(slot{node: e, index: i, set: func(n ast.Node) { a[i] = asExpr(n) }}) {
			return
		}
	}
}

func stmtList(a []ast.Stmt, fn func(slot) bool) {
	for i, s := range a {
		if !fn(slot{node: s, index: i, set: func(n ast.Node) { a[i] = asStmt(n) }}) {
			return
		}
	}
}

// compact removes the entries of the lists of n that were cleared by
// Delete.
func compact(n ast.Node) {
	switch x := n.(type) {
	case *ast.ArrayLit:
		x.Elts = removeNil(x.Elts)
	case *ast.ObjectLit:
		x.Props = removeNil(x.Props)
	case *ast.FuncLit:
		x.Params = removeNil(x.Params)
	case *ast.CallExpr:
		x.Args = removeNil(x.Args)
	case *ast.NewExpr:
		x.Args = removeNil(x.Args)
	case *ast.VarDecl:
		x.Specs = removeNil(x.Specs)
	case *ast.BlockStmt:
		x.List = removeNil(x.List)
	case *ast.File:
		x.Stmts = removeNil(x.Stmts)
	}
}

func removeNil[T ast.Node](a []T) []T {
	k := 0
	for _, x := range a {
		if !isNil(x) {
			a[k] = x
			k++
		}
	}
	return a[:k]
}

func isNil(n ast.Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *ast.Ident:
		return x == nil
	case *ast.FuncLit:
		return x == nil
	case *ast.BlockStmt:
		return x == nil
	case *ast.VarSpec:
		return x == nil
	}
	return false
}

func asExpr(n ast.Node) ast.Expr {
	if n == nil {
		return nil
	}
	x, ok := n.(ast.Expr)
	if !ok {
		panic(fmt.Sprintf("astutil: %T is not an expression", n))
	}
	return x
}

func asStmt(n ast.Node) ast.Stmt {
	if n == nil {
		return nil
	}
	x, ok := n.(ast.Stmt)
	if !ok {
		panic(fmt.Sprintf("astutil: %T is not a statement", n))
	}
	return x
}

func asProp(n ast.Node) ast.Prop {
	if n == nil {
		return nil
	}
	x, ok := n.(ast.Prop)
	if !ok {
		panic(fmt.Sprintf("astutil: %T is not a property", n))
	}
	return x
}

func asLabel(n ast.Node) ast.Label {
	x, ok := n.(ast.Label)
	if !ok {
		panic(fmt.Sprintf("astutil: %T is not a label", n))
	}
	return x
}

func asIdent(n ast.Node) *ast.Ident {
	if n == nil {
		return nil
	}
	x, ok := n.(*ast.Ident)
	if !ok {
		panic(fmt.Sprintf("astutil: %T is not an identifier", n))
	}
	return x
}

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

package ast

import "fmt"

// Walk traverses an AST in depth-first order: It starts by calling f(node);
// node must not be nil. If before returns true, Walk invokes f recursively for
// each of the non-nil children of node, followed by a call of after. Both
// functions may be nil. If before is nil, it is assumed to always return true.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	walk(&inspector{before: before, after: after}, node)
}

// A visitor's before method is invoked for each node encountered by Walk.
// If the result visitor w is true, Walk visits each of the children
// of node with the visitor w, followed by a call of w.After.
type visitor interface {
	Before(node Node) (w visitor)
	After(node Node)
}

type inspector struct {
	before func(Node) bool
	after  func(Node)
}

func (f *inspector) Before(node Node) visitor {
	if f.before == nil || f.before(node) {
		return f
	}
	return nil
}

func (f *inspector) After(node Node) {
	if f.after != nil {
		f.after(node)
	}
}

func walk(v visitor, node Node) {
	if v = v.Before(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		walk(v, c)
	}
	v.After(node)
}

// Children returns the direct children of node in source order. Nil
// optional children are omitted.
func Children(node Node) []Node {
	var a []Node
	add := func(n Node) {
		switch x := n.(type) {
		case nil:
		case *Ident:
			if x != nil {
				a = append(a, x)
			}
		case *FuncLit:
			if x != nil {
				a = append(a, x)
			}
		case *BlockStmt:
			if x != nil {
				a = append(a, x)
			}
		default:
			a = append(a, n)
		}
	}

	switch n := node.(type) {
	// Leaves.
	case *BadExpr, *Ident, *BasicLit, *BadStmt, *EmptyStmt:

	case *ArrayLit:
		for _, e := range n.Elts {
			add(e)
		}

	case *ObjectLit:
		for _, p := range n.Props {
			add(p)
		}

	case *Property:
		add(n.Key)
		add(n.Value)

	case *Accessor:
		add(n.Key)
		add(n.Func)

	case *FuncLit:
		add(n.Name)
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)

	case *ParenExpr:
		add(n.X)

	case *SelectorExpr:
		add(n.X)
		add(n.Sel)

	case *IndexExpr:
		add(n.X)
		add(n.Index)

	case *CallExpr:
		add(n.Fun)
		for _, e := range n.Args {
			add(e)
		}

	case *NewExpr:
		add(n.Fun)
		for _, e := range n.Args {
			add(e)
		}

	case *UnaryExpr:
		add(n.X)

	case *BinaryExpr:
		add(n.X)
		add(n.Y)

	case *CondExpr:
		add(n.Cond)
		add(n.X)
		add(n.Y)

	case *AssignExpr:
		add(n.Lhs)
		add(n.Rhs)

	case *ExprStmt:
		add(n.X)

	case *VarDecl:
		for _, s := range n.Specs {
			add(s)
		}

	case *VarSpec:
		add(n.Name)
		add(n.Value)

	case *ReturnStmt:
		add(n.Result)

	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)

	case *BlockStmt:
		for _, s := range n.List {
			add(s)
		}

	case *ThrowStmt:
		add(n.X)

	case *File:
		for _, s := range n.Stmts {
			add(s)
		}

	default:
		panic(fmt.Sprintf("Walk: unexpected node type %T", n))
	}
	return a
}

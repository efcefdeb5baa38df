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

// Package ast declares the types used to represent syntax trees for the
// JavaScript subset produced and consumed by jsgen.
package ast

import (
	"unicode"

	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// There are three classes of nodes: expressions, statements, and the
// properties of object literals. The node fields correspond to the
// individual parts of the respective productions.
//
// All nodes contain position information marking the beginning of the
// corresponding source text segment; it is accessible via the Pos accessor
// method. Nodes created by code other than the parser have no position.

// A Node represents any node in the abstract syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// An Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

func (*BadExpr) exprNode()      {}
func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*ArrayLit) exprNode()     {}
func (*ObjectLit) exprNode()    {}
func (*FuncLit) exprNode()      {}
func (*ParenExpr) exprNode()    {}
func (*SelectorExpr) exprNode() {}
func (*IndexExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*NewExpr) exprNode()      {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*CondExpr) exprNode()     {}
func (*AssignExpr) exprNode()   {}

// A Stmt node is implemented by all statements.
type Stmt interface {
	Node
	stmtNode()
}

func (*BadStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*VarDecl) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*BlockStmt) stmtNode()  {}
func (*ThrowStmt) stmtNode()  {}

// A Prop is an element of an object literal.
type Prop interface {
	Node
	propNode()
}

func (*Property) propNode() {}
func (*Accessor) propNode() {}

// A Label is any production that can be used as the key of a property.
type Label interface {
	Node
	labelName() (name string, ok bool)
}

func (n *Ident) labelName() (string, bool) {
	return n.Name, true
}

func (n *BasicLit) labelName() (string, bool) {
	switch n.Kind {
	case token.STRING:
		if str, err := literal.Unquote(n.Value); err == nil {
			return str, true
		}
	case token.NUMBER:
		return n.Value, true
	}
	return "", false
}

// LabelName reports the name of a label, if known, and whether it is valid.
func LabelName(x Label) (name string, ok bool) {
	return x.labelName()
}

// ----------------------------------------------------------------------------
// Expressions

// A BadExpr node is a placeholder for expressions containing
// syntax errors for which no correct expression nodes can be
// created.
type BadExpr struct {
	From, To token.Pos // position range of bad expression
}

// An Ident node represents an identifier, which in an expression position
// is a reference to a symbol.
type Ident struct {
	NamePos token.Pos // identifier position
	Name    string
}

// A BasicLit node represents a literal of basic type.
type BasicLit struct {
	ValuePos token.Pos   // literal position
	Kind     token.Token // NUMBER, STRING, REGEXP, NULL, TRUE, or FALSE
	Value    string      // literal string; e.g. 42, 0x7f, 3.14, 1e-9, "foo", 'bar', /a+/g
}

// An ArrayLit node represents an array literal.
type ArrayLit struct {
	Lbrack token.Pos // position of "["
	Elts   []Expr    // list of elements; or nil
	Rbrack token.Pos // position of "]"
}

// An ObjectLit node represents an object literal.
type ObjectLit struct {
	Lbrace token.Pos // position of "{"
	Props  []Prop    // list of properties; or nil
	Rbrace token.Pos // position of "}"
}

// A Property represents a key-value pair in an object literal.
type Property struct {
	Key   Label // *Ident, or *BasicLit of kind STRING or NUMBER
	Colon token.Pos
	Value Expr
}

// An Accessor represents a getter or setter in an object literal.
type Accessor struct {
	KindPos token.Pos
	Kind    string // "get" or "set"
	Key     Label
	Func    *FuncLit // Name is always nil
}

// A FuncLit node represents a function expression.
type FuncLit struct {
	Func   token.Pos  // position of "function" keyword
	Name   *Ident     // function name; or nil for anonymous functions
	Params []*Ident   // parameter names; or nil
	Body   *BlockStmt // function body
}

// A ParenExpr node represents a parenthesized expression.
type ParenExpr struct {
	Lparen token.Pos // position of "("
	X      Expr      // parenthesized expression
	Rparen token.Pos // position of ")"
}

// A SelectorExpr node represents an expression followed by a property name.
type SelectorExpr struct {
	X   Expr   // expression
	Sel *Ident // property name
}

// An IndexExpr node represents an expression followed by an index.
type IndexExpr struct {
	X      Expr      // expression
	Lbrack token.Pos // position of "["
	Index  Expr      // index expression
	Rbrack token.Pos // position of "]"
}

// A CallExpr node represents an expression followed by an argument list.
type CallExpr struct {
	Fun    Expr      // function expression
	Lparen token.Pos // position of "("
	Args   []Expr    // function arguments; or nil
	Rparen token.Pos // position of ")"
}

// A NewExpr node represents a constructor invocation.
type NewExpr struct {
	New    token.Pos // position of "new"
	Fun    Expr      // constructor expression
	Lparen token.Pos // position of "("; or NoPos if there is no argument list
	Args   []Expr    // constructor arguments; or nil
	Rparen token.Pos // position of ")"
}

// A UnaryExpr node represents a unary expression.
type UnaryExpr struct {
	OpPos token.Pos   // position of Op
	Op    token.Token // operator
	X     Expr        // operand
}

// A BinaryExpr node represents a binary expression.
type BinaryExpr struct {
	X     Expr        // left operand
	OpPos token.Pos   // position of Op
	Op    token.Token // operator
	Y     Expr        // right operand
}

// A CondExpr node represents a conditional expression: Cond ? X : Y.
type CondExpr struct {
	Cond     Expr
	Question token.Pos
	X        Expr
	Colon    token.Pos
	Y        Expr
}

// An AssignExpr node represents an assignment.
type AssignExpr struct {
	Lhs    Expr
	TokPos token.Pos   // position of Tok
	Tok    token.Token // assignment token: ASSIGN, ADD_ASSIGN, ...
	Rhs    Expr
}

// token.Pos and End implementations for expression nodes.

func (x *BadExpr) Pos() token.Pos      { return x.From }
func (x *Ident) Pos() token.Pos        { return x.NamePos }
func (x *BasicLit) Pos() token.Pos     { return x.ValuePos }
func (x *ArrayLit) Pos() token.Pos     { return x.Lbrack }
func (x *ObjectLit) Pos() token.Pos    { return x.Lbrace }
func (x *Property) Pos() token.Pos     { return x.Key.Pos() }
func (x *Accessor) Pos() token.Pos     { return x.KindPos }
func (x *FuncLit) Pos() token.Pos      { return x.Func }
func (x *ParenExpr) Pos() token.Pos    { return x.Lparen }
func (x *SelectorExpr) Pos() token.Pos { return x.X.Pos() }
func (x *IndexExpr) Pos() token.Pos    { return x.X.Pos() }
func (x *CallExpr) Pos() token.Pos     { return x.Fun.Pos() }
func (x *NewExpr) Pos() token.Pos      { return x.New }
func (x *UnaryExpr) Pos() token.Pos    { return x.OpPos }
func (x *BinaryExpr) Pos() token.Pos   { return x.X.Pos() }
func (x *CondExpr) Pos() token.Pos     { return x.Cond.Pos() }
func (x *AssignExpr) Pos() token.Pos   { return x.Lhs.Pos() }

func (x *BadExpr) End() token.Pos { return x.To }
func (x *Ident) End() token.Pos   { return x.NamePos.Add(len(x.Name)) }
func (x *BasicLit) End() token.Pos {
	return x.ValuePos.Add(len(x.Value))
}
func (x *ArrayLit) End() token.Pos     { return x.Rbrack.Add(1) }
func (x *ObjectLit) End() token.Pos    { return x.Rbrace.Add(1) }
func (x *Property) End() token.Pos     { return x.Value.End() }
func (x *Accessor) End() token.Pos     { return x.Func.End() }
func (x *FuncLit) End() token.Pos      { return x.Body.End() }
func (x *ParenExpr) End() token.Pos    { return x.Rparen.Add(1) }
func (x *SelectorExpr) End() token.Pos { return x.Sel.End() }
func (x *IndexExpr) End() token.Pos    { return x.Rbrack.Add(1) }
func (x *CallExpr) End() token.Pos     { return x.Rparen.Add(1) }
func (x *NewExpr) End() token.Pos {
	if x.Lparen.IsValid() {
		return x.Rparen.Add(1)
	}
	return x.Fun.End()
}
func (x *UnaryExpr) End() token.Pos  { return x.X.End() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }
func (x *CondExpr) End() token.Pos   { return x.Y.End() }
func (x *AssignExpr) End() token.Pos { return x.Rhs.End() }

// ----------------------------------------------------------------------------
// Statements

type (
	// A BadStmt node is a placeholder for statements containing
	// syntax errors for which no correct statement nodes can be
	// created.
	BadStmt struct {
		From, To token.Pos // position range of bad statement
	}

	// An EmptyStmt node represents a lone semicolon.
	EmptyStmt struct {
		Semicolon token.Pos
	}

	// An ExprStmt node represents an expression used as a statement.
	ExprStmt struct {
		X Expr
	}

	// A VarDecl node represents a var, let, or const declaration.
	VarDecl struct {
		TokPos token.Pos   // position of Tok
		Tok    token.Token // VAR, LET, or CONST
		Specs  []*VarSpec
	}

	// A ReturnStmt node represents a return statement.
	ReturnStmt struct {
		Return token.Pos // position of "return" keyword
		Result Expr      // result expression; or nil
	}

	// An IfStmt node represents an if statement.
	IfStmt struct {
		If   token.Pos // position of "if" keyword
		Cond Expr
		Then Stmt
		Else Stmt // else branch; or nil
	}

	// A BlockStmt node represents a braced statement list.
	BlockStmt struct {
		Lbrace token.Pos // position of "{"
		List   []Stmt
		Rbrace token.Pos // position of "}"
	}

	// A ThrowStmt node represents a throw statement.
	ThrowStmt struct {
		Throw token.Pos
		X     Expr
	}
)

// A VarSpec binds a single name in a VarDecl.
type VarSpec struct {
	Name  *Ident
	Value Expr // initial value; or nil
}

func (s *BadStmt) Pos() token.Pos    { return s.From }
func (s *EmptyStmt) Pos() token.Pos  { return s.Semicolon }
func (s *ExprStmt) Pos() token.Pos   { return s.X.Pos() }
func (s *VarDecl) Pos() token.Pos    { return s.TokPos }
func (s *VarSpec) Pos() token.Pos    { return s.Name.Pos() }
func (s *ReturnStmt) Pos() token.Pos { return s.Return }
func (s *IfStmt) Pos() token.Pos     { return s.If }
func (s *BlockStmt) Pos() token.Pos  { return s.Lbrace }
func (s *ThrowStmt) Pos() token.Pos  { return s.Throw }

func (s *BadStmt) End() token.Pos   { return s.To }
func (s *EmptyStmt) End() token.Pos { return s.Semicolon.Add(1) }
func (s *ExprStmt) End() token.Pos  { return s.X.End() }
func (s *VarDecl) End() token.Pos {
	if n := len(s.Specs); n > 0 {
		return s.Specs[n-1].End()
	}
	return s.TokPos.Add(len(s.Tok.String()))
}
func (s *VarSpec) End() token.Pos {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Name.End()
}
func (s *ReturnStmt) End() token.Pos {
	if s.Result != nil {
		return s.Result.End()
	}
	return s.Return.Add(len("return"))
}
func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}
func (s *BlockStmt) End() token.Pos { return s.Rbrace.Add(1) }
func (s *ThrowStmt) End() token.Pos { return s.X.End() }

// ----------------------------------------------------------------------------
// Files

// A File node represents a JavaScript program: the top-level scope.
type File struct {
	Filename string
	Stmts    []Stmt // top-level statements; or nil
}

func (f *File) Pos() token.Pos {
	if len(f.Stmts) > 0 {
		return f.Stmts[0].Pos()
	}
	return token.NoPos
}

func (f *File) End() token.Pos {
	if n := len(f.Stmts); n > 0 {
		return f.Stmts[n-1].End()
	}
	return token.NoPos
}

// ----------------------------------------------------------------------------
// Convenience functions for creating nodes

// NewIdent creates a new Ident without position.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// NewString creates a new BasicLit with a string value without position.
// It quotes the given string.
func NewString(str string) *BasicLit {
	return &BasicLit{Kind: token.STRING, Value: literal.Quote(str)}
}

// NewNull creates a new BasicLit configured to be a null value.
func NewNull() *BasicLit {
	return &BasicLit{Kind: token.NULL, Value: "null"}
}

// NewBool creates a new BasicLit with a bool value without position.
func NewBool(b bool) *BasicLit {
	x := &BasicLit{}
	if b {
		x.Kind = token.TRUE
		x.Value = "true"
	} else {
		x.Kind = token.FALSE
		x.Value = "false"
	}
	return x
}

// NewArray creates a new ArrayLit with the given elements.
func NewArray(elts ...Expr) *ArrayLit {
	return &ArrayLit{Elts: elts}
}

// NewObject creates a new ObjectLit with the given properties.
func NewObject(props ...Prop) *ObjectLit {
	return &ObjectLit{Props: props}
}

// NewProperty creates a property for the given key. The key is represented
// as an identifier if it is a valid one and as a quoted string otherwise.
func NewProperty(key string, value Expr) *Property {
	var label Label
	if IsValidIdent(key) && !token.IsKeyword(key) {
		label = NewIdent(key)
	} else {
		label = NewString(key)
	}
	return &Property{Key: label, Value: value}
}

// IsValidIdent reports whether str is a valid identifier.
func IsValidIdent(ident string) bool {
	if ident == "" {
		return false
	}
	for i, r := range ident {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

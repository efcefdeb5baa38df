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

package format

import (
	"fmt"
	"strings"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

// Expression precedence levels. Operators of token precedence p bind at
// level binaryPrec+p.
const (
	lowestPrec  = 0
	assignPrec  = 1
	condPrec    = 2
	binaryPrec  = 2
	unaryPrec   = binaryPrec + token.UnaryPrec
	postfixPrec = unaryPrec + 1
	primaryPrec = postfixPrec + 1
)

type formatter struct {
	cfg   *config
	buf   []byte
	level int
}

func (f *formatter) fail(format string, args ...any) {
	panic(formatError{fmt.Sprintf(format, args...)})
}

// print writes s, inserting a space where the previous output and s would
// otherwise merge into a different token.
func (f *formatter) print(s string) {
	if s == "" {
		return
	}
	if n := len(f.buf); n > 0 && needsSpace(f.buf[n-1], s[0]) {
		f.buf = append(f.buf, ' ')
	}
	f.buf = append(f.buf, s...)
}

func needsSpace(last, next byte) bool {
	switch {
	case isWordChar(last) && isWordChar(next):
		return true
	case last == '+' && next == '+', last == '-' && next == '-':
		return true
	case last == '/' && next == '/':
		return true
	}
	return false
}

func isWordChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '_' || c == '$' || c >= 0x80
}

// space writes a blank in beautified output.
func (f *formatter) space() {
	if f.cfg.beautify {
		f.buf = append(f.buf, ' ')
	}
}

// newline starts a new indented line in beautified output.
func (f *formatter) newline() {
	if f.cfg.beautify {
		f.buf = append(f.buf, '\n')
		f.buf = append(f.buf, strings.Repeat(" ", f.level*f.cfg.indent)...)
	}
}

// comma writes a list separator.
func (f *formatter) comma() {
	f.print(",")
	f.space()
}

// op writes a binary operator, surrounded by blanks in beautified output.
func (f *formatter) op(s string) {
	f.space()
	f.print(s)
	f.space()
}

// ----------------------------------------------------------------------------
// Statements

func (f *formatter) stmtList(list []ast.Stmt, top bool) {
	for i, s := range list {
		if i > 0 || !top {
			f.newline()
		}
		f.stmt(s)
	}
}

func (f *formatter) block(b *ast.BlockStmt) {
	f.print("{")
	if len(b.List) > 0 {
		f.level++
		f.stmtList(b.List, false)
		f.level--
		f.newline()
	}
	f.print("}")
}

func (f *formatter) stmt(s ast.Stmt) {
	switch x := s.(type) {
	case *ast.EmptyStmt:
		f.print(";")

	case *ast.ExprStmt:
		if startsWithBrace(x.X) {
			f.print("(")
			f.expr(x.X, lowestPrec)
			f.print(")")
		} else {
			f.expr(x.X, lowestPrec)
		}
		f.print(";")

	case *ast.VarDecl:
		f.varDecl(x)
		f.print(";")

	case *ast.ReturnStmt:
		f.print("return")
		if x.Result != nil {
			f.space()
			f.expr(x.Result, lowestPrec)
		}
		f.print(";")

	case *ast.ThrowStmt:
		f.print("throw")
		f.space()
		f.expr(x.X, lowestPrec)
		f.print(";")

	case *ast.IfStmt:
		f.print("if")
		f.space()
		f.print("(")
		f.expr(x.Cond, lowestPrec)
		f.print(")")
		f.space()
		f.stmt(x.Then)
		if x.Else != nil {
			f.space()
			f.print("else")
			f.space()
			f.stmt(x.Else)
		}

	case *ast.BlockStmt:
		f.block(x)

	case *ast.BadStmt:
		f.fail("cannot print bad statement")

	default:
		f.fail("unsupported statement type %T", s)
	}
}

func (f *formatter) varDecl(d *ast.VarDecl) {
	f.print(d.Tok.String())
	f.space()
	for i, spec := range d.Specs {
		if i > 0 {
			f.comma()
		}
		f.print(spec.Name.Name)
		if spec.Value != nil {
			f.op("=")
			f.expr(spec.Value, assignPrec)
		}
	}
}

// startsWithBrace reports whether the printed form of x would start with a
// token that makes an expression statement ambiguous.
func startsWithBrace(x ast.Expr) bool {
	for {
		switch e := x.(type) {
		case *ast.ObjectLit, *ast.FuncLit:
			return true
		case *ast.BinaryExpr:
			x = e.X
		case *ast.CallExpr:
			x = e.Fun
		case *ast.SelectorExpr:
			x = e.X
		case *ast.IndexExpr:
			x = e.X
		case *ast.CondExpr:
			x = e.Cond
		case *ast.AssignExpr:
			x = e.Lhs
		default:
			return false
		}
	}
}

// ----------------------------------------------------------------------------
// Expressions

func exprPrec(x ast.Expr) int {
	switch e := x.(type) {
	case *ast.AssignExpr:
		return assignPrec
	case *ast.CondExpr:
		return condPrec
	case *ast.BinaryExpr:
		return binaryPrec + e.Op.Precedence()
	case *ast.UnaryExpr:
		return unaryPrec
	case *ast.BasicLit:
		if e.Kind == token.NUMBER && strings.HasPrefix(e.Value, "-") {
			return unaryPrec
		}
	case *ast.CallExpr, *ast.SelectorExpr, *ast.IndexExpr, *ast.NewExpr:
		return postfixPrec
	}
	return primaryPrec
}

// expr prints x, enclosing it in parentheses if it binds less tightly
// than prec.
func (f *formatter) expr(x ast.Expr, prec int) {
	if exprPrec(x) < prec {
		f.print("(")
		f.expr0(x)
		f.print(")")
		return
	}
	f.expr0(x)
}

func (f *formatter) expr0(x ast.Expr) {
	switch e := x.(type) {
	case *ast.BadExpr:
		f.fail("cannot print bad expression")

	case *ast.Ident:
		f.print(e.Name)

	case *ast.BasicLit:
		f.basicLit(e)

	case *ast.ArrayLit:
		f.print("[")
		for i, elt := range e.Elts {
			if i > 0 {
				f.comma()
			}
			f.expr(elt, assignPrec)
		}
		f.print("]")

	case *ast.ObjectLit:
		f.object(e)

	case *ast.FuncLit:
		f.print("function")
		if e.Name != nil {
			f.print(e.Name.Name)
		}
		f.signatureAndBody(e)

	case *ast.ParenExpr:
		f.print("(")
		f.expr(e.X, lowestPrec)
		f.print(")")

	case *ast.SelectorExpr:
		f.expr(e.X, postfixPrec)
		if lit, ok := e.X.(*ast.BasicLit); ok && lit.Kind == token.NUMBER &&
			!strings.ContainsAny(lit.Value, ".eExXoObB") {
			// 1.toString is a syntax error.
			f.print(".")
		}
		f.print(".")
		f.print(e.Sel.Name)

	case *ast.IndexExpr:
		f.expr(e.X, postfixPrec)
		f.print("[")
		f.expr(e.Index, lowestPrec)
		f.print("]")

	case *ast.CallExpr:
		f.expr(e.Fun, postfixPrec)
		f.args(e.Args)

	case *ast.NewExpr:
		f.print("new")
		if containsCall(e.Fun) {
			f.print("(")
			f.expr(e.Fun, lowestPrec)
			f.print(")")
		} else {
			f.expr(e.Fun, postfixPrec)
		}
		f.args(e.Args)

	case *ast.UnaryExpr:
		f.print(e.Op.String())
		if e.Op.IsKeyword() {
			f.space()
		}
		f.expr(e.X, unaryPrec)

	case *ast.BinaryExpr:
		f.binaryExpr(e)

	case *ast.CondExpr:
		f.expr(e.Cond, condPrec+1)
		f.op("?")
		f.expr(e.X, assignPrec)
		f.op(":")
		f.expr(e.Y, assignPrec)

	case *ast.AssignExpr:
		f.expr(e.Lhs, postfixPrec)
		f.op(e.Tok.String())
		f.expr(e.Rhs, assignPrec)

	default:
		f.fail("unsupported expression type %T", x)
	}
}

func (f *formatter) binaryExpr(e *ast.BinaryExpr) {
	prec := binaryPrec + e.Op.Precedence()
	left, right := prec, prec+1
	if e.Op.IsRightAssoc() {
		left, right = prec+1, prec
	}

	if mixesNullish(e.Op, e.X) || e.Op == token.EXP && exprPrec(e.X) == unaryPrec {
		f.print("(")
		f.expr0(e.X)
		f.print(")")
	} else {
		f.expr(e.X, left)
	}

	f.op(e.Op.String())

	if mixesNullish(e.Op, e.Y) {
		f.print("(")
		f.expr0(e.Y)
		f.print(")")
	} else {
		f.expr(e.Y, right)
	}
}

// mixesNullish reports whether x is a logical expression that cannot be
// combined with op without parentheses.
func mixesNullish(op token.Token, x ast.Expr) bool {
	b, ok := x.(*ast.BinaryExpr)
	if !ok {
		return false
	}
	switch {
	case op == token.NULLISH:
		return b.Op == token.LAND || b.Op == token.LOR
	case op == token.LAND || op == token.LOR:
		return b.Op == token.NULLISH
	}
	return false
}

func containsCall(x ast.Expr) bool {
	for {
		switch e := x.(type) {
		case *ast.CallExpr:
			return true
		case *ast.SelectorExpr:
			x = e.X
		case *ast.IndexExpr:
			x = e.X
		default:
			return false
		}
	}
}

func (f *formatter) args(list []ast.Expr) {
	f.print("(")
	for i, a := range list {
		if i > 0 {
			f.comma()
		}
		f.expr(a, assignPrec)
	}
	f.print(")")
}

func (f *formatter) signatureAndBody(fn *ast.FuncLit) {
	f.print("(")
	for i, p := range fn.Params {
		if i > 0 {
			f.comma()
		}
		f.print(p.Name)
	}
	f.print(")")
	f.space()
	if fn.Body == nil {
		f.print("{}")
		return
	}
	f.block(fn.Body)
}

func (f *formatter) object(o *ast.ObjectLit) {
	f.print("{")
	if len(o.Props) == 0 {
		f.print("}")
		return
	}
	f.level++
	for i, p := range o.Props {
		if i > 0 {
			f.print(",")
		}
		f.newline()
		switch x := p.(type) {
		case *ast.Property:
			f.label(x.Key)
			f.print(":")
			f.space()
			f.expr(x.Value, assignPrec)
		case *ast.Accessor:
			f.print(x.Kind)
			f.label(x.Key)
			f.signatureAndBody(x.Func)
		default:
			f.fail("unsupported property type %T", p)
		}
	}
	f.level--
	f.newline()
	f.print("}")
}

func (f *formatter) label(l ast.Label) {
	switch x := l.(type) {
	case *ast.Ident:
		f.print(x.Name)
	case *ast.BasicLit:
		f.basicLit(x)
	default:
		f.fail("unsupported label type %T", l)
	}
}

func (f *formatter) basicLit(x *ast.BasicLit) {
	switch x.Kind {
	case token.STRING:
		s, err := literal.Unquote(x.Value)
		if err != nil {
			f.fail("invalid string literal %s: %v", x.Value, err)
		}
		f.print(literal.Quote(s))
	default:
		f.print(x.Value)
	}
}

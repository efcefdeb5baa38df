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

package parser

import (
	"fmt"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/scanner"
	"jsgen.dev/go/js/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	file    *token.File
	errors  errors.Error
	scanner scanner.Scanner
	cfg     Config

	// Tracing/debugging
	trace     bool // == (mode & Trace != 0)
	panicking bool // set if we are bailing out due to too many errors.
	indent    int  // indentation used for tracing output

	// Error bookkeeping
	errCount int
	errLine  int

	// Next token
	pos token.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal

	// Error recovery
	// (used to limit the number of calls to sync functions
	// w/o making scanning progress - avoids potential endless
	// loops across multiple parser functions during error recovery)
	syncPos token.Pos // last synchronization position
	syncCnt int       // number of calls to sync without progress
}

func (p *parser) init(filename string, src []byte, opts []Option) {
	p.cfg = NewConfig(opts...)
	p.file = token.NewFile(filename, len(src))
	eh := func(pos token.Pos, msg string) {
		p.errf(pos, "%s", msg)
	}
	p.scanner.Init(p.file, src, eh, 0)

	p.trace = p.cfg.Mode&Trace != 0 // for convenience (p.trace is used frequently)

	p.next()
}

// ----------------------------------------------------------------------------
// Parsing support

func (p *parser) printTrace(a ...any) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	pos := p.file.Position(p.pos)
	fmt.Printf("%5d:%3d: ", pos.Line, pos.Column)
	i := 2 * p.indent
	for i > n {
		fmt.Print(dots)
		i -= n
	}
	// i <= n
	fmt.Print(dots[0:i])
	fmt.Println(a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

// Advance to the next token.
func (p *parser) next() {
	// Because of one-token look-ahead, print the previous token
	// when tracing as it provides a more readable output. The
	// very first token (!p.pos.IsValid()) is not initialized
	// (it is ILLEGAL), so don't print it .
	if p.trace && p.pos.IsValid() {
		s := p.tok.String()
		switch {
		case p.tok.IsLiteral():
			p.printTrace(s, p.lit)
		case p.tok.IsOperator(), p.tok.IsKeyword():
			p.printTrace("\"" + s + "\"")
		default:
			p.printTrace(s)
		}
	}

	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) errf(pos token.Pos, msg string, args ...any) {
	// If AllErrors is not set, discard errors reported on the same line
	// as the last recorded error and stop parsing if there are more than
	// 10 errors.
	if p.cfg.Mode&AllErrors == 0 {
		if p.errCount > 0 && p.errLine == pos.Line() {
			return // discard - likely a spurious error
		}
		if p.errCount > 10 {
			p.panicking = true
			panic("too many errors")
		}
	}
	p.errCount++
	p.errLine = pos.Line()
	p.errors = errors.Append(p.errors, errors.Newf(pos, msg, args...))
}

func (p *parser) errorExpected(pos token.Pos, obj string) {
	if pos != p.pos {
		p.errf(pos, "expected %s", obj)
		return
	}
	// the error happened at the current position;
	// make the error message more specific
	switch {
	case p.tok == token.EOF:
		p.errf(pos, "expected %s, found EOF", obj)
	case p.tok.IsLiteral():
		p.errf(pos, "expected %s, found %s", obj, p.lit)
	default:
		p.errf(pos, "expected %s, found '%s'", obj, p.tok)
	}
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
	}
	p.next() // make progress
	return pos
}

// expectSemi consumes a statement terminator. A semicolon may be omitted
// before a closing brace, at the end of the input, or when the next token
// is on a new line.
func (p *parser) expectSemi() {
	switch {
	case p.tok == token.SEMICOLON:
		p.next()
	case p.tok == token.RBRACE || p.tok == token.EOF || p.pos.IsNewline():
	default:
		p.errorExpected(p.pos, "';'")
		p.syncStmt()
	}
}

// atComma reports whether a list continues, consuming the comma if present.
func (p *parser) atComma(context string, follow token.Token) bool {
	switch p.tok {
	case token.COMMA:
		p.next()
		return p.tok != follow
	case follow, token.EOF:
		return false
	}
	p.errf(p.pos, "missing ',' in %s", context)
	return true // "insert" comma and continue
}

// syncStmt advances to the next statement.
// Used for synchronization after an error.
func (p *parser) syncStmt() {
	for {
		switch p.tok {
		case token.VAR, token.LET, token.CONST, token.RETURN, token.IF,
			token.THROW, token.SEMICOLON, token.RBRACE:
			// Return only if parser made some progress since last
			// sync or if it has not reached 10 sync calls without
			// progress. Otherwise consume at least one token to
			// avoid an endless parser loop.
			if p.pos == p.syncPos && p.syncCnt < 10 {
				p.syncCnt++
				return
			}
			if p.syncPos.Compare(p.pos) < 0 {
				p.syncPos = p.pos
				p.syncCnt = 0
				return
			}
		case token.EOF:
			return
		}
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Identifiers

func (p *parser) parseIdent() *ast.Ident {
	pos := p.pos
	name := "_"
	if p.tok == token.IDENT {
		name = p.lit
		p.next()
	} else {
		p.expect(token.IDENT) // use expect() error handling
	}
	return &ast.Ident{NamePos: pos, Name: name}
}

// parseIdentName parses an identifier in a position where reserved words
// are allowed, such as after a period.
func (p *parser) parseIdentName() *ast.Ident {
	if p.tok.IsKeyword() {
		ident := &ast.Ident{NamePos: p.pos, Name: p.lit}
		p.next()
		return ident
	}
	return p.parseIdent()
}

// ----------------------------------------------------------------------------
// Expressions

// parseOperand returns an expression.
func (p *parser) parseOperand() (expr ast.Expr) {
	if p.trace {
		defer un(trace(p, "Operand"))
	}

	switch p.tok {
	case token.IDENT:
		return p.parseIdent()

	case token.NUMBER, token.STRING, token.NULL, token.TRUE, token.FALSE:
		x := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
		return x

	case token.QUO, token.QUO_ASSIGN:
		pos := p.pos
		lit := p.scanner.ScanRegExp(pos)
		p.next()
		return &ast.BasicLit{ValuePos: pos, Kind: token.REGEXP, Value: lit}

	case token.LBRACK:
		return p.parseArray()

	case token.LBRACE:
		return p.parseObject()

	case token.FUNCTION:
		return p.parseFuncLit()

	case token.LPAREN:
		lparen := p.pos
		p.next()
		x := p.parseExpr()
		rparen := p.expect(token.RPAREN)
		return &ast.ParenExpr{Lparen: lparen, X: x, Rparen: rparen}

	case token.NEW:
		return p.parseNew()
	}

	// we have an error
	pos := p.pos
	p.errorExpected(pos, "operand")
	p.syncStmt()
	return &ast.BadExpr{From: pos, To: p.pos}
}

func (p *parser) parseArray() *ast.ArrayLit {
	if p.trace {
		defer un(trace(p, "ArrayLit"))
	}
	lbrack := p.expect(token.LBRACK)
	var elts []ast.Expr
	for p.tok != token.RBRACK && p.tok != token.EOF {
		elts = append(elts, p.parseAssignExpr())
		if !p.atComma("array literal", token.RBRACK) {
			break
		}
	}
	rbrack := p.expect(token.RBRACK)
	return &ast.ArrayLit{Lbrack: lbrack, Elts: elts, Rbrack: rbrack}
}

func (p *parser) parseObject() *ast.ObjectLit {
	if p.trace {
		defer un(trace(p, "ObjectLit"))
	}
	lbrace := p.expect(token.LBRACE)
	var props []ast.Prop
	for p.tok != token.RBRACE && p.tok != token.EOF {
		props = append(props, p.parseProp())
		if !p.atComma("object literal", token.RBRACE) {
			break
		}
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.ObjectLit{Lbrace: lbrace, Props: props, Rbrace: rbrace}
}

func (p *parser) parseLabel() ast.Label {
	switch {
	case p.tok == token.STRING || p.tok == token.NUMBER:
		x := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
		return x
	case p.tok == token.IDENT || p.tok.IsKeyword():
		return p.parseIdentName()
	}
	pos := p.pos
	p.errorExpected(pos, "property name")
	p.next() // make progress
	return &ast.Ident{NamePos: pos, Name: "_"}
}

func (p *parser) parseProp() ast.Prop {
	if p.trace {
		defer un(trace(p, "Property"))
	}

	if p.tok == token.IDENT && (p.lit == "get" || p.lit == "set") {
		pos, kind := p.pos, p.lit
		key := p.parseLabel()
		switch p.tok {
		case token.COLON, token.COMMA, token.RBRACE:
			// A plain property named get or set.
			return p.parsePropValue(key)
		}
		key = p.parseLabel()
		fn := &ast.FuncLit{Func: p.pos}
		fn.Params, fn.Body = p.parseSignatureAndBody()
		return &ast.Accessor{KindPos: pos, Kind: kind, Key: key, Func: fn}
	}
	return p.parsePropValue(p.parseLabel())
}

func (p *parser) parsePropValue(key ast.Label) ast.Prop {
	colon := p.expect(token.COLON)
	return &ast.Property{Key: key, Colon: colon, Value: p.parseAssignExpr()}
}

func (p *parser) parseFuncLit() *ast.FuncLit {
	if p.trace {
		defer un(trace(p, "FuncLit"))
	}
	fn := &ast.FuncLit{Func: p.expect(token.FUNCTION)}
	if p.tok == token.IDENT {
		fn.Name = p.parseIdent()
	}
	fn.Params, fn.Body = p.parseSignatureAndBody()
	return fn
}

func (p *parser) parseSignatureAndBody() ([]*ast.Ident, *ast.BlockStmt) {
	p.expect(token.LPAREN)
	var params []*ast.Ident
	for p.tok != token.RPAREN && p.tok != token.EOF {
		params = append(params, p.parseIdent())
		if !p.atComma("parameter list", token.RPAREN) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params, p.parseBlockStmt()
}

func (p *parser) parseNew() ast.Expr {
	if p.trace {
		defer un(trace(p, "NewExpr"))
	}
	x := &ast.NewExpr{New: p.expect(token.NEW)}
	fun := p.parseOperand()
L:
	for {
		switch p.tok {
		case token.PERIOD:
			p.next()
			fun = &ast.SelectorExpr{X: fun, Sel: p.parseIdentName()}
		case token.LBRACK:
			fun = p.parseIndex(fun)
		default:
			break L
		}
	}
	x.Fun = fun
	if p.tok == token.LPAREN {
		x.Lparen, x.Args, x.Rparen = p.parseArgs()
	}
	return x
}

func (p *parser) parseArgs() (lparen token.Pos, args []ast.Expr, rparen token.Pos) {
	lparen = p.expect(token.LPAREN)
	for p.tok != token.RPAREN && p.tok != token.EOF {
		args = append(args, p.parseAssignExpr())
		if !p.atComma("argument list", token.RPAREN) {
			break
		}
	}
	rparen = p.expect(token.RPAREN)
	return lparen, args, rparen
}

func (p *parser) parseIndex(x ast.Expr) ast.Expr {
	lbrack := p.expect(token.LBRACK)
	index := p.parseExpr()
	rbrack := p.expect(token.RBRACK)
	return &ast.IndexExpr{X: x, Lbrack: lbrack, Index: index, Rbrack: rbrack}
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	if p.trace {
		defer un(trace(p, "PrimaryExpr"))
	}

	x := p.parseOperand()

L:
	for {
		switch p.tok {
		case token.PERIOD:
			p.next()
			x = &ast.SelectorExpr{X: x, Sel: p.parseIdentName()}
		case token.LBRACK:
			x = p.parseIndex(x)
		case token.LPAREN:
			call := &ast.CallExpr{Fun: x}
			call.Lparen, call.Args, call.Rparen = p.parseArgs()
			x = call
		default:
			break L
		}
	}
	return x
}

func (p *parser) parseUnaryExpr() ast.Expr {
	if p.trace {
		defer un(trace(p, "UnaryExpr"))
	}

	switch p.tok {
	case token.ADD, token.SUB, token.NOT, token.TILDE,
		token.TYPEOF, token.VOID, token.DELETE:
		pos, op := p.pos, p.tok
		p.next()
		return &ast.UnaryExpr{OpPos: pos, Op: op, X: p.parseUnaryExpr()}
	case token.INC, token.DEC:
		p.errf(p.pos, "increment and decrement operators are not supported")
		p.next()
	}

	return p.parsePrimaryExpr()
}

func (p *parser) parseBinaryExpr(prec1 int) ast.Expr {
	if p.trace {
		defer un(trace(p, "BinaryExpr"))
	}

	x := p.parseUnaryExpr()

	for {
		op := p.tok
		prec := op.Precedence()
		if prec < prec1 || prec == token.LowestPrec {
			return x
		}
		pos := p.expect(op)
		next := prec + 1
		if op.IsRightAssoc() {
			next = prec
		}
		x = &ast.BinaryExpr{X: x, OpPos: pos, Op: op, Y: p.parseBinaryExpr(next)}
	}
}

func (p *parser) parseCondExpr() ast.Expr {
	x := p.parseBinaryExpr(token.LowestPrec + 1)
	if p.tok != token.QUESTION {
		return x
	}
	c := &ast.CondExpr{Cond: x, Question: p.expect(token.QUESTION)}
	c.X = p.parseAssignExpr()
	c.Colon = p.expect(token.COLON)
	c.Y = p.parseAssignExpr()
	return c
}

func (p *parser) parseAssignExpr() ast.Expr {
	if p.trace {
		defer un(trace(p, "AssignExpr"))
	}

	x := p.parseCondExpr()
	if !p.tok.IsAssign() {
		return x
	}
	switch unparen(x).(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr:
	default:
		p.errf(x.Pos(), "invalid assignment target")
	}
	pos, tok := p.pos, p.tok
	p.next()
	return &ast.AssignExpr{Lhs: x, TokPos: pos, Tok: tok, Rhs: p.parseAssignExpr()}
}

func (p *parser) parseExpr() ast.Expr {
	if p.trace {
		defer un(trace(p, "Expression"))
	}
	return p.parseAssignExpr()
}

// If x is of the form (T), unparen returns unparen(T), otherwise it returns x.
func unparen(x ast.Expr) ast.Expr {
	if p, isParen := x.(*ast.ParenExpr); isParen {
		x = unparen(p.X)
	}
	return x
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseStmt() ast.Stmt {
	if p.trace {
		defer un(trace(p, "Statement"))
	}

	switch p.tok {
	case token.SEMICOLON:
		s := &ast.EmptyStmt{Semicolon: p.pos}
		p.next()
		return s

	case token.VAR, token.LET, token.CONST:
		s := p.parseVarDecl()
		p.expectSemi()
		return s

	case token.LBRACE:
		return p.parseBlockStmt()

	case token.RETURN:
		s := &ast.ReturnStmt{Return: p.pos}
		p.next()
		if p.tok != token.SEMICOLON && p.tok != token.RBRACE &&
			p.tok != token.EOF && !p.pos.IsNewline() {
			s.Result = p.parseExpr()
		}
		p.expectSemi()
		return s

	case token.THROW:
		s := &ast.ThrowStmt{Throw: p.pos}
		p.next()
		if p.pos.IsNewline() {
			p.errf(p.pos, "illegal newline after throw")
		}
		s.X = p.parseExpr()
		p.expectSemi()
		return s

	case token.IF:
		return p.parseIfStmt()

	case token.RBRACE, token.EOF:
		pos := p.pos
		p.errorExpected(pos, "statement")
		return &ast.BadStmt{From: pos, To: pos}
	}

	s := &ast.ExprStmt{X: p.parseExpr()}
	p.expectSemi()
	return s
}

func (p *parser) parseVarDecl() *ast.VarDecl {
	if p.trace {
		defer un(trace(p, "VarDecl"))
	}
	d := &ast.VarDecl{TokPos: p.pos, Tok: p.tok}
	p.next()
	for {
		spec := &ast.VarSpec{Name: p.parseIdent()}
		if p.tok == token.ASSIGN {
			p.next()
			spec.Value = p.parseAssignExpr()
		} else if d.Tok == token.CONST {
			p.errf(p.pos, "missing initializer in const declaration")
		}
		d.Specs = append(d.Specs, spec)
		if p.tok != token.COMMA {
			return d
		}
		p.next()
	}
}

func (p *parser) parseIfStmt() *ast.IfStmt {
	if p.trace {
		defer un(trace(p, "IfStmt"))
	}
	s := &ast.IfStmt{If: p.expect(token.IF)}
	p.expect(token.LPAREN)
	s.Cond = p.parseExpr()
	p.expect(token.RPAREN)
	s.Then = p.parseStmt()
	if p.tok == token.ELSE {
		p.next()
		s.Else = p.parseStmt()
	}
	return s
}

func (p *parser) parseBlockStmt() *ast.BlockStmt {
	if p.trace {
		defer un(trace(p, "BlockStmt"))
	}
	b := &ast.BlockStmt{Lbrace: p.expect(token.LBRACE)}
	b.List = p.parseStmtList()
	b.Rbrace = p.expect(token.RBRACE)
	return b
}

func (p *parser) parseStmtList() (list []ast.Stmt) {
	for p.tok != token.RBRACE && p.tok != token.EOF {
		list = append(list, p.parseStmt())
	}
	return list
}

// ----------------------------------------------------------------------------
// Source files

func (p *parser) parseFile() *ast.File {
	if p.trace {
		defer un(trace(p, "File"))
	}
	var stmts []ast.Stmt
	for p.tok != token.EOF {
		if p.tok == token.RBRACE {
			p.errf(p.pos, "unexpected '}'")
			p.next()
			continue
		}
		stmts = append(stmts, p.parseStmt())
	}
	return &ast.File{Stmts: stmts}
}

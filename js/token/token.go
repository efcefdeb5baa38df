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

// Package token defines constants representing the lexical tokens of the
// JavaScript subset handled by jsgen and basic operations on tokens
// (printing, predicates).
package token

import "strconv"

// Token is the set of lexical tokens of the language.
type Token int

// The list of tokens.
const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	literalBeg
	// Identifiers and basic type literals
	// (these tokens stand for classes of literals)
	IDENT  // main
	NUMBER // 12345, 1.5e3, 0x7f
	STRING // "abc", 'abc'
	REGEXP // /ab+c/gi
	literalEnd

	operatorBeg
	// Operators and delimiters
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %
	EXP // **

	AND  // &
	OR   // |
	XOR  // ^
	SHL  // <<
	SHR  // >>
	USHR // >>>

	LAND    // &&
	LOR     // ||
	NULLISH // ??

	EQL        // ==
	NEQ        // !=
	STRICT_EQL // ===
	STRICT_NEQ // !==
	LSS        // <
	GTR        // >
	LEQ        // <=
	GEQ        // >=

	NOT   // !
	TILDE // ~
	INC   // ++
	DEC   // --

	ASSIGN     // =
	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	QUO_ASSIGN // /=
	REM_ASSIGN // %=

	LPAREN    // (
	LBRACK    // [
	LBRACE    // {
	COMMA     // ,
	PERIOD    // .
	RPAREN    // )
	RBRACK    // ]
	RBRACE    // }
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?
	operatorEnd

	keywordBeg
	// Keywords
	VAR
	LET
	CONST
	FUNCTION
	RETURN
	IF
	ELSE
	THROW
	NEW
	TYPEOF
	VOID
	DELETE
	IN
	INSTANCEOF

	NULL
	TRUE
	FALSE
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",

	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	REGEXP: "REGEXP",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",
	EXP: "**",

	AND:  "&",
	OR:   "|",
	XOR:  "^",
	SHL:  "<<",
	SHR:  ">>",
	USHR: ">>>",

	LAND:    "&&",
	LOR:     "||",
	NULLISH: "??",

	EQL:        "==",
	NEQ:        "!=",
	STRICT_EQL: "===",
	STRICT_NEQ: "!==",
	LSS:        "<",
	GTR:        ">",
	LEQ:        "<=",
	GEQ:        ">=",

	NOT:   "!",
	TILDE: "~",
	INC:   "++",
	DEC:   "--",

	ASSIGN:     "=",
	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	QUO_ASSIGN: "/=",
	REM_ASSIGN: "%=",

	LPAREN:    "(",
	LBRACK:    "[",
	LBRACE:    "{",
	COMMA:     ",",
	PERIOD:    ".",
	RPAREN:    ")",
	RBRACK:    "]",
	RBRACE:    "}",
	SEMICOLON: ";",
	COLON:     ":",
	QUESTION:  "?",

	VAR:        "var",
	LET:        "let",
	CONST:      "const",
	FUNCTION:   "function",
	RETURN:     "return",
	IF:         "if",
	ELSE:       "else",
	THROW:      "throw",
	NEW:        "new",
	TYPEOF:     "typeof",
	VOID:       "void",
	DELETE:     "delete",
	IN:         "in",
	INSTANCEOF: "instanceof",

	NULL:  "null",
	TRUE:  "true",
	FALSE: "false",
}

// String returns the string corresponding to the token tok.
// For operators, delimiters, and keywords the string is the actual
// token character sequence (e.g., for the token ADD, the string is
// "+"). For all other tokens the string corresponds to the token
// constant name (e.g. for the token IDENT, the string is "IDENT").
func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// A set of constants for precedence-based expression parsing.
// Non-operators have lowest precedence, followed by operators
// starting with precedence 1 up to unary operators. The highest
// precedence serves as "catch-all" precedence for selector,
// indexing, and other operator and delimiter tokens.
const (
	LowestPrec  = 0 // non-operators
	UnaryPrec   = 13
	HighestPrec = 16
)

// Precedence returns the operator precedence of the binary
// operator op. If op is not a binary operator, the result
// is LowestPrec.
func (tok Token) Precedence() int {
	switch tok {
	case NULLISH:
		return 1
	case LOR:
		return 2
	case LAND:
		return 3
	case OR:
		return 4
	case XOR:
		return 5
	case AND:
		return 6
	case EQL, NEQ, STRICT_EQL, STRICT_NEQ:
		return 7
	case LSS, GTR, LEQ, GEQ, IN, INSTANCEOF:
		return 8
	case SHL, SHR, USHR:
		return 9
	case ADD, SUB:
		return 10
	case MUL, QUO, REM:
		return 11
	case EXP:
		return 12
	}
	return LowestPrec
}

// IsRightAssoc reports whether the binary operator tok associates to the
// right.
func (tok Token) IsRightAssoc() bool { return tok == EXP }

// IsAssign reports whether tok is an assignment operator.
func (tok Token) IsAssign() bool { return ASSIGN <= tok && tok <= REM_ASSIGN }

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or IDENT (if not a keyword).
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether name is a reserved word of the language.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// Predicates

// IsLiteral returns true for tokens corresponding to identifiers
// and basic type literals; it returns false otherwise.
func (tok Token) IsLiteral() bool { return literalBeg < tok && tok < literalEnd }

// IsOperator returns true for tokens corresponding to operators and
// delimiters; it returns false otherwise.
func (tok Token) IsOperator() bool { return operatorBeg < tok && tok < operatorEnd }

// IsKeyword returns true for tokens corresponding to keywords;
// it returns false otherwise.
func (tok Token) IsKeyword() bool { return keywordBeg < tok && tok < keywordEnd }

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

// Package scanner implements a scanner for JavaScript source text. It takes
// a []byte as source which can then be tokenized through repeated calls to
// the Scan method.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/token"
)

// A Scanner holds the Scanner's internal state while processing
// a given text. It can be allocated as part of another data
// structure but must be initialized via Init before use.
type Scanner struct {
	// immutable state
	file *token.File    // source file handle
	src  []byte         // source
	err  errors.Handler // error reporting; or nil
	mode Mode           // scanning mode

	// scanning state
	ch              rune // current character
	offset          int  // character offset
	rdOffset        int  // reading offset (position after current character)
	lineOffset      int  // current line offset
	linesSinceLast  int
	spacesSinceLast int

	// public state - ok to modify
	ErrorCount int // number of errors encountered
}

const bom = 0xFEFF // byte order mark, only permitted as very first character

// Read the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		s.ch = -1 // eof
	}
}

// A Mode value is a set of flags (or 0).
// They control scanner behavior.
type Mode uint

// These constants are options to the Init function.
const (
	ScanComments Mode = 1 << iota // return comments as COMMENT tokens
)

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file set file
// for position information and it adds line information for each line.
// It is ok to re-use the same file when re-scanning the same file as
// line information which is already present is ignored. Init causes a
// panic if the file size does not match the src size.
//
// Calls to Scan will invoke the error handler err if they encounter a
// syntax error and err is not nil. Also, for each error encountered,
// the Scanner field ErrorCount is incremented by one. The mode parameter
// determines how comments are handled.
func (s *Scanner) Init(file *token.File, src []byte, err errors.Handler, mode Mode) {
	// Explicitly initialize all fields since a scanner may be reused.
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err
	s.mode = mode

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.lineOffset = 0
	s.linesSinceLast = 0
	s.spacesSinceLast = 0
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

func (s *Scanner) error(offs int, msg string) {
	if s.err != nil {
		s.err(s.file.Pos(offs, 0), msg)
	}
	s.ErrorCount++
}

func (s *Scanner) scanComment() string {
	// initial '/' already consumed; s.ch == '/' || s.ch == '*'
	offs := s.offset - 1 // position of initial '/'

	if s.ch == '/' {
		//-style comment
		s.next()
		for s.ch != '\n' && s.ch >= 0 {
			s.next()
		}
		return string(s.src[offs:s.offset])
	}

	/*-style comment */
	s.next()
	for s.ch >= 0 {
		ch := s.ch
		if ch == '\n' {
			s.linesSinceLast++
		}
		s.next()
		if ch == '*' && s.ch == '/' {
			s.next()
			return string(s.src[offs:s.offset])
		}
	}

	s.error(offs, "comment not terminated")
	return string(s.src[offs:s.offset])
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func digitVal(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case ch == '_':
		return 0
	case 'a' <= ch && ch <= 'f':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'F':
		return int(ch - 'A' + 10)
	}
	return 16 // larger than any legal digit val
}

func (s *Scanner) scanMantissa(base int) {
	var last rune
	for digitVal(s.ch) < base {
		last = s.ch
		s.next()
	}
	if last == '_' {
		s.error(s.offset-1, "illegal '_' in number")
	}
}

func (s *Scanner) scanNumber(seenDecimalPoint bool) (token.Token, string) {
	// digitVal(s.ch) < 10
	offs := s.offset
	tok := token.NUMBER

	if seenDecimalPoint {
		offs--
		s.scanMantissa(10)
		goto exponent
	}

	if s.ch == '0' {
		// int or float
		offs := s.offset
		s.next()
		base := 0
		switch s.ch {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			s.next()
			start := s.offset
			s.scanMantissa(base)
			if s.offset == start {
				s.error(offs, fmt.Sprintf("illegal base-%d number", base))
			}
			goto exit
		}
		// decimal int or float
		s.scanMantissa(10)
		if s.ch == '.' || s.ch == 'e' || s.ch == 'E' {
			goto fraction
		}
		goto exit
	}

	// decimal int or float
	s.scanMantissa(10)

fraction:
	if s.ch == '.' {
		s.next()
		s.scanMantissa(10)
	}

exponent:
	if s.ch == 'e' || s.ch == 'E' {
		s.next()
		if s.ch == '-' || s.ch == '+' {
			s.next()
		}
		if digitVal(s.ch) >= 10 {
			s.error(s.offset, "illegal exponent in number")
		}
		s.scanMantissa(10)
	}

exit:
	if isLetter(s.ch) {
		s.error(s.offset, fmt.Sprintf("identifier directly after number: %q", s.ch))
	}
	return tok, string(s.src[offs:s.offset])
}

// scanEscape parses an escape sequence. In case of a syntax error, it
// stops at the offending character (without consuming it) and returns
// false. Otherwise it returns true.
func (s *Scanner) scanEscape() bool {
	offs := s.offset

	var n int
	switch s.ch {
	case 'x':
		s.next()
		n = 2
	case 'u':
		s.next()
		if s.ch == '{' {
			s.next()
			start := s.offset
			for digitVal(s.ch) < 16 && s.ch != '_' {
				s.next()
			}
			if s.ch != '}' || s.offset == start {
				s.error(offs, "illegal unicode escape sequence")
				return false
			}
			s.next()
			return true
		}
		n = 4
	case '\r':
		s.next()
		if s.ch == '\n' {
			s.next()
		}
		return true
	default:
		if s.ch < 0 {
			s.error(offs, "escape sequence not terminated")
			return false
		}
		s.next()
		return true
	}

	for ; n > 0; n-- {
		if digitVal(s.ch) >= 16 || s.ch == '_' {
			msg := "unknown escape sequence"
			if s.ch < 0 {
				msg = "escape sequence not terminated"
			}
			s.error(s.offset, msg)
			return false
		}
		s.next()
	}
	return true
}

func (s *Scanner) scanString(quote rune) string {
	// opening quote already consumed
	offs := s.offset - 1

	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "string literal not terminated")
			break
		}
		s.next()
		if ch == quote {
			break
		}
		if ch == '\\' {
			s.scanEscape()
		}
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.ch {
		case ' ', '\t', '\v', '\f', '\u00a0', bom:
			s.spacesSinceLast++
		case '\n', '\u2028', '\u2029':
			s.linesSinceLast++
		case '\r':
		default:
			return
		}
		s.next()
	}
}

// Helper functions for scanning multi-byte tokens such as >> += >>= .
// Different routines recognize different length tok_i based on matches
// of ch_i. If a token ends in '=', the result is tok1 or tok3
// respectively. Otherwise, the result is tok0 if there was no other
// matching character, or tok2 if the matching character was ch2.

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

func (s *Scanner) switch3(tok0, tok1 token.Token, ch2 rune, tok2 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	if s.ch == ch2 {
		s.next()
		return tok2
	}
	return tok0
}

// ScanRegExp rescans the division operator at pos as the start of a regular
// expression literal and returns the complete literal, including its flags.
// The parser calls it when it encounters a QUO or QUO_ASSIGN token where an
// operand is expected. Scanning continues after the literal.
func (s *Scanner) ScanRegExp(pos token.Pos) string {
	offs := s.file.Offset(pos)
	s.ch = '/'
	s.offset = offs
	s.rdOffset = offs + 1
	s.next() // consume initial '/'

	inClass := false
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "regular expression literal not terminated")
			return string(s.src[offs:s.offset])
		}
		s.next()
		switch {
		case ch == '\\':
			if s.ch == '\n' || s.ch < 0 {
				continue
			}
			s.next()
		case ch == '[':
			inClass = true
		case ch == ']':
			inClass = false
		case ch == '/' && !inClass:
			for isLetter(s.ch) || isDigit(s.ch) {
				s.next()
			}
			s.linesSinceLast = 0
			s.spacesSinceLast = 0
			return string(s.src[offs:s.offset])
		}
	}
}

// Scan scans the next token and returns the token position, the token,
// and its literal string if applicable. The source end is indicated by
// EOF.
//
// If the returned token is a literal (IDENT, NUMBER, STRING) or COMMENT,
// the literal string has the corresponding value.
//
// If the returned token is a keyword, the literal string is the keyword.
//
// If the returned token is ILLEGAL, the literal string is the
// offending character.
//
// In all other cases, Scan returns an empty literal string.
//
// The relative position of the returned pos records whether the token is
// preceded by a line terminator. Parsers use this to implement automatic
// semicolon insertion.
//
// The scanner never produces REGEXP tokens by itself: a slash is ambiguous
// without syntactic context. See ScanRegExp.
//
// For more tolerant parsing, Scan will return a valid token if
// possible even if a syntax error was encountered. Thus, even
// if the resulting token sequence contains no illegal tokens,
// a client may not assume that no error occurred. Instead it
// must check the scanner's ErrorCount or the number of calls
// of the error handler, if there was one installed.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
scanAgain:
	s.skipWhitespace()

	var rel token.RelPos
	switch {
	case s.linesSinceLast > 0:
		rel = token.Newline
	case s.spacesSinceLast > 0:
		rel = token.Blank
	default:
		rel = token.NoSpace
	}
	// current token start
	offset := s.offset
	pos = s.file.Pos(offset, rel)

	// determine token value
	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.IDENT
		if len(lit) > 1 {
			// keywords are longer than one letter - avoid lookup otherwise
			tok = token.Lookup(lit)
		}
	case '0' <= ch && ch <= '9':
		tok, lit = s.scanNumber(false)
	default:
		s.next() // always make progress
		switch ch {
		case -1:
			tok = token.EOF
		case '"', '\'':
			tok = token.STRING
			lit = s.scanString(ch)
		case ':':
			tok = token.COLON
		case ';':
			tok = token.SEMICOLON
			lit = ";"
		case '.':
			if '0' <= s.ch && s.ch <= '9' {
				tok, lit = s.scanNumber(true)
			} else {
				tok = token.PERIOD
			}
		case ',':
			tok = token.COMMA
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case '?':
			tok = token.QUESTION
			if s.ch == '?' {
				s.next()
				tok = token.NULLISH
			}
		case '~':
			tok = token.TILDE
		case '+':
			tok = s.switch3(token.ADD, token.ADD_ASSIGN, '+', token.INC)
		case '-':
			tok = s.switch3(token.SUB, token.SUB_ASSIGN, '-', token.DEC)
		case '*':
			tok = s.switch3(token.MUL, token.MUL_ASSIGN, '*', token.EXP)
		case '/':
			if s.ch == '/' || s.ch == '*' {
				// comment
				comment := s.scanComment()
				if s.mode&ScanComments == 0 {
					goto scanAgain
				}
				tok = token.COMMENT
				lit = comment
			} else {
				tok = s.switch2(token.QUO, token.QUO_ASSIGN)
			}
		case '%':
			tok = s.switch2(token.REM, token.REM_ASSIGN)
		case '^':
			tok = token.XOR
		case '<':
			tok = s.switch3(token.LSS, token.LEQ, '<', token.SHL)
		case '>':
			switch {
			case s.ch == '=':
				s.next()
				tok = token.GEQ
			case s.ch == '>':
				s.next()
				tok = s.switch3(token.SHR, token.ILLEGAL, '>', token.USHR)
				if tok == token.ILLEGAL {
					s.error(offset, "compound shift assignment not supported")
					lit = ">>="
				}
			default:
				tok = token.GTR
			}
		case '=':
			tok = token.ASSIGN
			if s.ch == '=' {
				s.next()
				tok = s.switch2(token.EQL, token.STRICT_EQL)
			}
		case '!':
			tok = token.NOT
			if s.ch == '=' {
				s.next()
				tok = s.switch2(token.NEQ, token.STRICT_NEQ)
			}
		case '&':
			tok = token.AND
			if s.ch == '&' {
				s.next()
				tok = token.LAND
			}
		case '|':
			tok = token.OR
			if s.ch == '|' {
				s.next()
				tok = token.LOR
			}
		default:
			// next reports unexpected BOMs - don't repeat
			if ch != bom {
				s.error(s.file.Offset(pos), fmt.Sprintf("illegal character %#U", ch))
			}
			tok = token.ILLEGAL
			lit = string(ch)
		}
	}
	s.linesSinceLast = 0
	s.spacesSinceLast = 0
	return
}

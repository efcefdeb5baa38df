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

// Package literal implements conversions to and from string representations
// of JavaScript literals.
package literal

import (
	"strings"
	"unicode/utf8"

	"jsgen.dev/go/js/errors"
)

const hex = "0123456789abcdef"

var (
	errSyntax             = errors.New("invalid syntax")
	errInvalidQuote       = errors.New("invalid quote")
	errUnterminated       = errors.New("unterminated string")
	errInvalidEscape      = errors.New("invalid escape sequence")
	errInvalidHexEscape   = errors.New("invalid hexadecimal escape sequence")
	errInvalidCodePoint   = errors.New("code point out of range")
	errNewlineInString    = errors.New("newline in string")
	errUnmatchedSurrogate = errors.New("unmatched surrogate")
)

// Quote returns a double-quoted JavaScript string literal representing s.
// Invalid UTF-8 sequences are replaced with U+FFFD. Control characters and
// the line and paragraph separators are escaped; all other characters are
// written verbatim.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, 3*len(s)/2+2), s))
}

// AppendQuote appends a double-quoted JavaScript string literal representing
// s, as generated by Quote, to buf and returns the extended buffer.
func AppendQuote(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for width := 0; len(s) > 0; s = s[width:] {
		r := rune(s[0])
		width = 1
		if r >= utf8.RuneSelf {
			r, width = utf8.DecodeRuneInString(s)
		}
		buf = appendEscapedRune(buf, r)
	}
	return append(buf, '"')
}

func appendEscapedRune(buf []byte, r rune) []byte {
	switch r {
	case '"', '\\':
		return append(buf, '\\', byte(r))
	case '\b':
		return append(buf, `\b`...)
	case '\f':
		return append(buf, `\f`...)
	case '\n':
		return append(buf, `\n`...)
	case '\r':
		return append(buf, `\r`...)
	case '\t':
		return append(buf, `\t`...)
	case '\u2028', '\u2029':
		// Valid in JSON strings but line terminators in older JavaScript.
		return appendUnicode(buf, r)
	}
	if r < ' ' || r == 0x7f {
		return appendUnicode(buf, r)
	}
	return utf8.AppendRune(buf, r)
}

func appendUnicode(buf []byte, r rune) []byte {
	buf = append(buf, `\u`...)
	for s := 12; s >= 0; s -= 4 {
		buf = append(buf, hex[r>>uint(s)&0xF])
	}
	return buf
}

// Unquote interprets s as a single- or double-quoted JavaScript string
// literal, returning the string value that s represents.
func Unquote(s string) (string, error) {
	n := len(s)
	if n < 2 {
		return "", errSyntax
	}
	quote := s[0]
	if quote != '"' && quote != '\'' {
		return "", errInvalidQuote
	}
	if s[n-1] != quote {
		return "", errUnterminated
	}
	s = s[1 : n-1]

	if !strings.ContainsAny(s, "\\\n\r") && !strings.ContainsRune(s, rune(quote)) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		switch c := s[0]; {
		case c == quote:
			return "", errSyntax
		case c == '\n' || c == '\r':
			return "", errNewlineInString
		case c != '\\':
			b.WriteByte(c)
			s = s[1:]
			continue
		}
		r, tail, err := unquoteEscape(s[1:])
		if err != nil {
			return "", err
		}
		if r >= 0 {
			b.WriteRune(r)
		}
		s = tail
	}
	return b.String(), nil
}

// unquoteEscape decodes the escape sequence at the start of s, which
// directly follows a backslash. It returns -1 for a line continuation.
func unquoteEscape(s string) (r rune, tail string, err error) {
	if len(s) == 0 {
		return 0, "", errInvalidEscape
	}
	if c := s[0]; c >= utf8.RuneSelf {
		r, w := utf8.DecodeRuneInString(s)
		return r, s[w:], nil
	}
	c := s[0]
	s = s[1:]
	switch c {
	case 'b':
		return '\b', s, nil
	case 'f':
		return '\f', s, nil
	case 'n':
		return '\n', s, nil
	case 'r':
		if strings.HasPrefix(s, "\n") {
			return -1, s[1:], nil
		}
		return '\r', s, nil
	case 't':
		return '\t', s, nil
	case 'v':
		return '\v', s, nil
	case '0':
		if len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			return 0, "", errInvalidEscape
		}
		return 0, s, nil
	case '\n':
		return -1, s, nil
	case '\r':
		return -1, strings.TrimPrefix(s, "\n"), nil
	case 'x':
		v, ok := unhexN(s, 2)
		if !ok {
			return 0, "", errInvalidHexEscape
		}
		return v, s[2:], nil
	case 'u':
		v, tail, err := unquoteUnicode(s)
		if err != nil {
			return 0, "", err
		}
		if 0xD800 <= v && v < 0xDC00 {
			// A high surrogate must be followed by an escaped low surrogate.
			if !strings.HasPrefix(tail, `\u`) {
				return 0, "", errUnmatchedSurrogate
			}
			lo, rest, err := unquoteUnicode(tail[2:])
			if err != nil {
				return 0, "", err
			}
			if lo < 0xDC00 || 0xE000 <= lo {
				return 0, "", errUnmatchedSurrogate
			}
			return 0x10000 + (v-0xD800)<<10 + (lo - 0xDC00), rest, nil
		}
		return v, tail, nil
	}
	return rune(c), s, nil
}

func unquoteUnicode(s string) (rune, string, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 || end > 7 {
			return 0, "", errInvalidHexEscape
		}
		v, ok := unhexN(s[1:end], end-1)
		if !ok {
			return 0, "", errInvalidHexEscape
		}
		if v > utf8.MaxRune {
			return 0, "", errInvalidCodePoint
		}
		return v, s[end+1:], nil
	}
	v, ok := unhexN(s, 4)
	if !ok {
		return 0, "", errInvalidHexEscape
	}
	return v, s[4:], nil
}

func unhexN(s string, n int) (v rune, ok bool) {
	if len(s) < n {
		return 0, false
	}
	for i := 0; i < n; i++ {
		x, ok := unhex(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | x
	}
	return v, true
}

func unhex(b byte) (v rune, ok bool) {
	c := rune(b)
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

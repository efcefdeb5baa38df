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

package scanner

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"jsgen.dev/go/js/token"
)

type elt struct {
	tok token.Token
	lit string
}

func scanAll(t *testing.T, src string, mode Mode) (elts []elt, errs []string) {
	t.Helper()
	var s Scanner
	f := token.NewFile("test.js", len(src))
	eh := func(pos token.Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	s.Init(f, []byte(src), eh, mode)
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		elts = append(elts, elt{tok, lit})
	}
	return elts, errs
}

func TestScan(t *testing.T) {
	testCases := []struct {
		src  string
		want []elt
	}{{
		src: `foo $bar _baz var let const function`,
		want: []elt{
			{token.IDENT, "foo"},
			{token.IDENT, "$bar"},
			{token.IDENT, "_baz"},
			{token.VAR, "var"},
			{token.LET, "let"},
			{token.CONST, "const"},
			{token.FUNCTION, "function"},
		},
	}, {
		src: `0 12 1.5 .5 1e3 2.5E-3 0x1F 0o17 0b101 1_000`,
		want: []elt{
			{token.NUMBER, "0"},
			{token.NUMBER, "12"},
			{token.NUMBER, "1.5"},
			{token.NUMBER, ".5"},
			{token.NUMBER, "1e3"},
			{token.NUMBER, "2.5E-3"},
			{token.NUMBER, "0x1F"},
			{token.NUMBER, "0o17"},
			{token.NUMBER, "0b101"},
			{token.NUMBER, "1_000"},
		},
	}, {
		src: `"a\"b" 'c\'d' "\u{1F600}"`,
		want: []elt{
			{token.STRING, `"a\"b"`},
			{token.STRING, `'c\'d'`},
			{token.STRING, `"\u{1F600}"`},
		},
	}, {
		src: `+ - * / % ** += -= *= /= %= ++ --`,
		want: []elt{
			{token.ADD, ""}, {token.SUB, ""}, {token.MUL, ""}, {token.QUO, ""},
			{token.REM, ""}, {token.EXP, ""}, {token.ADD_ASSIGN, ""},
			{token.SUB_ASSIGN, ""}, {token.MUL_ASSIGN, ""}, {token.QUO_ASSIGN, ""},
			{token.REM_ASSIGN, ""}, {token.INC, ""}, {token.DEC, ""},
		},
	}, {
		src: `== != === !== < <= > >= << >> >>> & | ^ && || ?? ! ~ ? : = . , ;`,
		want: []elt{
			{token.EQL, ""}, {token.NEQ, ""}, {token.STRICT_EQL, ""},
			{token.STRICT_NEQ, ""}, {token.LSS, ""}, {token.LEQ, ""},
			{token.GTR, ""}, {token.GEQ, ""}, {token.SHL, ""}, {token.SHR, ""},
			{token.USHR, ""}, {token.AND, ""}, {token.OR, ""}, {token.XOR, ""},
			{token.LAND, ""}, {token.LOR, ""}, {token.NULLISH, ""},
			{token.NOT, ""}, {token.TILDE, ""}, {token.QUESTION, ""},
			{token.COLON, ""}, {token.ASSIGN, ""}, {token.PERIOD, ""},
			{token.COMMA, ""}, {token.SEMICOLON, ";"},
		},
	}, {
		src: "a // line comment\n/* block */ b",
		want: []elt{
			{token.IDENT, "a"},
			{token.IDENT, "b"},
		},
	}, {
		src: `([{}])`,
		want: []elt{
			{token.LPAREN, ""}, {token.LBRACK, ""}, {token.LBRACE, ""},
			{token.RBRACE, ""}, {token.RBRACK, ""}, {token.RPAREN, ""},
		},
	}}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			got, errs := scanAll(t, tc.src, 0)
			qt.Assert(t, qt.HasLen(errs, 0))
			qt.Assert(t, qt.CmpEquals(got, tc.want, cmp.AllowUnexported(elt{})))
		})
	}
}

func TestScanComments(t *testing.T) {
	got, errs := scanAll(t, "a // x\n/* y */", ScanComments)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.CmpEquals(got, []elt{
		{token.IDENT, "a"},
		{token.COMMENT, "// x"},
		{token.COMMENT, "/* y */"},
	}, cmp.AllowUnexported(elt{})))
}

func TestRelPos(t *testing.T) {
	src := "a b\nc/*\n*/d(e)"
	var s Scanner
	s.Init(token.NewFile("", len(src)), []byte(src), nil, 0)

	want := []struct {
		lit string
		rel token.RelPos
	}{
		{"a", token.NoSpace},
		{"b", token.Blank},
		{"c", token.Newline},
		{"d", token.Newline},
		{"", token.NoSpace},
		{"e", token.NoSpace},
	}
	for _, w := range want {
		pos, _, lit := s.Scan()
		qt.Check(t, qt.Equals(lit, w.lit))
		qt.Check(t, qt.Equals(pos.RelPos(), w.rel), qt.Commentf("token %q", w.lit))
	}
}

func TestPosition(t *testing.T) {
	src := "foo\n  bar"
	var s Scanner
	s.Init(token.NewFile("x.js", len(src)), []byte(src), nil, 0)

	s.Scan()
	pos, _, _ := s.Scan()
	qt.Assert(t, qt.Equals(pos.String(), "x.js:2:3"))
}

func TestScanRegExp(t *testing.T) {
	testCases := []struct {
		src  string
		want string
		next token.Token
	}{
		{src: `/ab+c/gi.x`, want: `/ab+c/gi`, next: token.PERIOD},
		{src: `/[/]/)`, want: `/[/]/`, next: token.RPAREN},
		{src: `/a\/b/,`, want: `/a\/b/`, next: token.COMMA},
		{src: `/=a/ ]`, want: `/=a/`, next: token.RBRACK},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			var s Scanner
			var errs []string
			eh := func(pos token.Pos, msg string) { errs = append(errs, msg) }
			s.Init(token.NewFile("", len(tc.src)), []byte(tc.src), eh, 0)

			pos, tok, _ := s.Scan()
			qt.Assert(t, qt.IsTrue(tok == token.QUO || tok == token.QUO_ASSIGN))
			qt.Assert(t, qt.Equals(s.ScanRegExp(pos), tc.want))

			_, tok, _ = s.Scan()
			qt.Assert(t, qt.Equals(tok, tc.next))
			qt.Assert(t, qt.HasLen(errs, 0))
		})
	}
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		src string
		err string
	}{
		{`"abc`, "1:1: string literal not terminated"},
		{"'a\nb'", "1:1: string literal not terminated"},
		{`0x`, "1:1: illegal base-16 number"},
		{`1e`, "1:3: illegal exponent in number"},
		{`12abc`, "1:3: identifier directly after number: 'a'"},
		{`/* abc`, "1:1: comment not terminated"},
		{`#`, "1:1: illegal character U+0023 '#'"},
		{`"\x4g"`, "1:5: unknown escape sequence"},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			_, errs := scanAll(t, tc.src, 0)
			qt.Assert(t, qt.Not(qt.HasLen(errs, 0)))
			qt.Assert(t, qt.Equals(errs[0], "test.js:"+tc.err))
		})
	}
}

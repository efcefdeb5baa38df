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

package parser_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/parser"
	"jsgen.dev/go/js/token"
)

func TestParseFile(t *testing.T) {
	testCases := []struct {
		desc string
		in   string
		out  string
	}{{
		desc: "empty",
		in:   "",
		out:  "",
	}, {
		desc: "var declarations",
		in:   "var a = 1, b; let c = 'x'; const d = null",
		out:  `var a=1,b;let c="x";const d=null;`,
	}, {
		desc: "automatic semicolons",
		in: `a = 1
		b = 2
		foo()`,
		out: `a=1;b=2;foo();`,
	}, {
		desc: "restricted return",
		in: `function f() {
			return
			1
		}`,
		out: `(function f(){return;1;});`,
	}, {
		desc: "objects and arrays",
		in:   `module.exports = {a: [1, 2,], "b c": {}, 3: true, if: false,}`,
		out:  `module.exports={a:[1,2],"b c":{},3:true,if:false};`,
	}, {
		desc: "accessors",
		in:   `x = {get a() { return 1 }, set a(v) {}, get: 2}`,
		out:  `x={get a(){return 1;},set a(v){},get:2};`,
	}, {
		desc: "functions",
		in:   `f = function anonymous(a, b) { if (a) return b; else { throw new Error("x") } }`,
		out:  `f=function anonymous(a,b){if(a)return b;else{throw new Error("x");}};`,
	}, {
		desc: "precedence",
		in:   `x = (1 + 2) * 3 - 4 / (5 % 6) ** 2 ** 3`,
		out:  `x=(1+2)*3-4/(5%6)**2**3;`,
	}, {
		desc: "conditional and logical",
		in:   `x = a && b || c ? d ?? e : !f`,
		out:  `x=a&&b||c?d??e:!f;`,
	}, {
		desc: "unary operators",
		in:   `x = typeof a + void 0 + -(-b) + ~c; delete o.p`,
		out:  `x=typeof a+void 0+-(-b)+~c;delete o.p;`,
	}, {
		desc: "member access",
		in:   `a.b[c](d, e).new.f`,
		out:  `a.b[c](d,e).new.f;`,
	}, {
		desc: "new",
		in:   `x = new a.B(1); y = new C`,
		out:  `x=new a.B(1);y=new C();`,
	}, {
		desc: "regular expressions",
		in:   `x = /ab+c/gi; y = a / b / c; z = [/[/]/]`,
		out:  `x=/ab+c/gi;y=a/b/c;z=[/[/]/];`,
	}, {
		desc: "comments",
		in: `// leading
		a /* inner */ = 1 // trailing`,
		out: `a=1;`,
	}, {
		desc: "in and instanceof",
		in:   `x = "a" in o && o instanceof O`,
		out:  `x="a"in o&&o instanceof O;`,
	}, {
		desc: "compound assignment",
		in:   `a += 1; b.c -= 2; d[0] *= 3`,
		out:  `a+=1;b.c-=2;d[0]*=3;`,
	}, {
		desc: "empty statements and blocks",
		in:   `;{}{a}`,
		out:  `;{}{a;}`,
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			f, err := parser.ParseFile("test.js", tc.in)
			qt.Assert(t, qt.IsNil(err))
			b, err := format.Node(f)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(b), tc.out))
		})
	}
}

func TestParseExpr(t *testing.T) {
	x, err := parser.ParseExpr("", `foo + (2 + 2);`)
	qt.Assert(t, qt.IsNil(err))

	bin, ok := x.(*ast.BinaryExpr)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(bin.Op, token.ADD))
	qt.Assert(t, qt.Equals(bin.X.(*ast.Ident).Name, "foo"))
	_, ok = bin.Y.(*ast.ParenExpr)
	qt.Assert(t, qt.IsTrue(ok))

	_, err = parser.ParseExpr("", `a b`)
	qt.Assert(t, qt.ErrorMatches(err, `expected 'EOF', found b`))

	x, err = parser.ParseExpr("", `a b`, parser.AllowPartial)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(x.(*ast.Ident).Name, "a"))
}

func TestPositions(t *testing.T) {
	f, err := parser.ParseFile("pos.js", "var x = [\n  1,\n  {a: 2}\n]")
	qt.Assert(t, qt.IsNil(err))

	decl := f.Stmts[0].(*ast.VarDecl)
	list := decl.Specs[0].Value.(*ast.ArrayLit)
	qt.Assert(t, qt.Equals(list.Pos().String(), "pos.js:1:9"))
	qt.Assert(t, qt.Equals(list.Elts[1].Pos().String(), "pos.js:3:3"))
	qt.Assert(t, qt.Equals(list.End().String(), "pos.js:4:2"))
	qt.Assert(t, qt.IsTrue(list.Elts[1].Pos().IsNewline()))
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		in  string
		err string
	}{
		{`var = 1`, `expected 'IDENT', found '='`},
		{`a = (1`, `expected ')', found EOF`},
		{`x = {a 1}`, `expected ':', found 1`},
		{`x = [1 2]`, `missing ',' in array literal`},
		{`a b`, `expected ';', found b`},
		{`const a`, `missing initializer in const declaration`},
		{`1 = 2`, `invalid assignment target`},
		{`x++`, `expected ';', found '++'`},
		{"throw\nx", `illegal newline after throw`},
		{`}`, `unexpected '}'`},
		{`"abc`, `string literal not terminated`},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := parser.ParseFile("err.js", tc.in)
			qt.Assert(t, qt.IsNotNil(err))
			qt.Assert(t, qt.Equals(errors.Errors(err)[0].Error(), tc.err))
		})
	}
}

func TestConfig(t *testing.T) {
	cfg := parser.NewConfig(parser.AllErrors)
	qt.Assert(t, qt.IsTrue(cfg.IsValid()))
	qt.Assert(t, qt.Equals(cfg.Mode, parser.AllErrors))

	cfg2 := parser.NewConfig(cfg, parser.AllowPartial)
	qt.Assert(t, qt.Equals(cfg2.Mode, parser.AllErrors|parser.AllowPartial))

	qt.Assert(t, qt.PanicMatches(func() {
		parser.NewConfig(parser.Config{})
	}, `zero parser.Config value used; use parser.NewConfig!`))
}

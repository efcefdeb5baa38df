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

package dedup_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/internal/jstxtar"
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/parser"
	"jsgen.dev/go/tools/dedup"
)

func TestFiles(t *testing.T) {
	test := jstxtar.TxTarTest{
		Root: "./testdata",
		Name: "dedup",
	}
	test.Run(t, func(t *jstxtar.Test) {
		var opts []dedup.Option
		if p, ok := t.Value("prefix"); ok {
			opts = append(opts, dedup.Prefix(p))
		}
		if v, ok := t.Value("target"); ok {
			opts = append(opts, dedup.Target(v))
		}

		run := func(name string, opts ...dedup.Option) {
			f := t.Parse("in.js")
			err := dedup.PullCommonStructures(f, opts...)
			qt.Assert(t, qt.IsNil(err))
			b, err := format.Node(f, format.Beautify())
			qt.Assert(t, qt.IsNil(err))
			w := t.Writer(name)
			w.Write(b)
			w.Write([]byte("\n"))
		}
		run("", opts...)
		run("longest", append(opts, dedup.LongestFirst())...)
	})
}

const x24 = `"XXXXXXXXXXXXXXXXXXXXXXXX"`

func TestPullCommonStructures(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		opts []dedup.Option
		out  string
	}{{
		name: "hoist repeated object",
		in:   `[{bar:` + x24 + `},"quux","bar",{bar:` + x24 + `}];`,
		out:  `var p1={bar:` + x24 + `};[p1,"quux","bar",p1];`,
	}, {
		name: "single occurrence",
		in:   `[{bar:` + x24 + `},"quux"];`,
		out:  `[{bar:` + x24 + `},"quux"];`,
	}, {
		name: "too short",
		in:   `[{a:1},{a:1},{a:1}];`,
		out:  `[{a:1},{a:1},{a:1}];`,
	}, {
		name: "length counts UTF-16 units",
		in:   `[{a:"éééééééééééé"},{a:"éééééééééééé"}];`,
		out:  `[{a:"éééééééééééé"},{a:"éééééééééééé"}];`,
	}, {
		name: "surrogate pairs count twice",
		in:   `[{a:"😀😀😀😀😀😀😀😀"},{a:"😀😀😀😀😀😀😀😀"}];`,
		out:  `var p1={a:"😀😀😀😀😀😀😀😀"};[p1,p1];`,
	}, {
		name: "below saving threshold",
		in:   `[[1],[1]];`,
		opts: []dedup.Option{dedup.MinLength(0)},
		out:  `[[1],[1]];`,
	}, {
		name: "above saving threshold",
		in:   `[[1,2],[1,2],[1,2]];`,
		opts: []dedup.Option{dedup.MinLength(0)},
		out:  `var p1=[1,2];[p1,p1,p1];`,
	}, {
		name: "saving threshold is exclusive",
		in:   `[[1,2],[1,2],[1,2]];`,
		opts: []dedup.Option{dedup.MinLength(0), dedup.MinSaving(15)},
		out:  `[[1,2],[1,2],[1,2]];`,
	}, {
		name: "ties broken by text",
		in: `[{x:"BBBBBBBBBBBBBBBBBBBB"},{x:"AAAAAAAAAAAAAAAAAAAA"},` +
			`{x:"BBBBBBBBBBBBBBBBBBBB"},{x:"AAAAAAAAAAAAAAAAAAAA"}];`,
		out: `var p1={x:"AAAAAAAAAAAAAAAAAAAA"},p2={x:"BBBBBBBBBBBBBBBBBBBB"};` +
			`[p2,p1,p2,p1];`,
	}, {
		name: "shortest first",
		in:   `[{a:[1,2,3,4,5,6,7,8,9,10,11]},{a:[1,2,3,4,5,6,7,8,9,10,11]}];`,
		out:  `var p1=[1,2,3,4,5,6,7,8,9,10,11],p2={a:p1};[p2,p2];`,
	}, {
		name: "nested occurrences are not hoisted again",
		in:   `[{a:[1,2,3,4,5,6,7,8,9,10,11]},{a:[1,2,3,4,5,6,7,8,9,10,11]}];`,
		opts: []dedup.Option{dedup.LongestFirst()},
		out:  `var p1={a:[1,2,3,4,5,6,7,8,9,10,11]};[p1,p1];`,
	}, {
		name: "occurrences in function bodies",
		in:   `var f=function(){return[1,2,3,4,5,6,7,8,9,10,11];};g([1,2,3,4,5,6,7,8,9,10,11]);`,
		out:  `var p1=[1,2,3,4,5,6,7,8,9,10,11];var f=function(){return p1;};g(p1);`,
	}, {
		name: "const for ES6",
		in:   `[{bar:` + x24 + `},{bar:` + x24 + `}];`,
		opts: []dedup.Option{dedup.Target("6")},
		out:  `const p1={bar:` + x24 + `};[p1,p1];`,
	}, {
		name: "const for year editions",
		in:   `[{bar:` + x24 + `},{bar:` + x24 + `}];`,
		opts: []dedup.Option{dedup.Target("2020")},
		out:  `const p1={bar:` + x24 + `};[p1,p1];`,
	}, {
		name: "var for ES5",
		in:   `[{bar:` + x24 + `},{bar:` + x24 + `}];`,
		opts: []dedup.Option{dedup.Target("5.1")},
		out:  `var p1={bar:` + x24 + `};[p1,p1];`,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := parser.ParseFile("in.js", tc.in)
			qt.Assert(t, qt.IsNil(err))

			opts := append([]dedup.Option{dedup.Prefix("p")}, tc.opts...)
			err = dedup.PullCommonStructures(f, opts...)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(format.String(f), tc.out))

			// The result must still be valid source.
			_, err = parser.ParseFile("out.js", format.String(f))
			qt.Assert(t, qt.IsNil(err))
		})
	}
}

func TestIdempotent(t *testing.T) {
	f, err := parser.ParseFile("in.js", `[{bar:`+x24+`},"quux","bar",{bar:`+x24+`}];`)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsNil(dedup.PullCommonStructures(f, dedup.Prefix("p"))))
	first := format.String(f)

	qt.Assert(t, qt.IsNil(dedup.PullCommonStructures(f, dedup.Prefix("q"))))
	qt.Assert(t, qt.Equals(format.String(f), first))
}

func TestRandomPrefix(t *testing.T) {
	f, err := parser.ParseFile("in.js", `[{bar:`+x24+`},{bar:`+x24+`}];`)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsNil(dedup.PullCommonStructures(f)))
	qt.Assert(t, qt.Matches(format.String(f),
		`var (_[0-9a-z]+)1=\{bar:"X+"\};\[_[0-9a-z]+1,_[0-9a-z]+1\];`))

	decl := f.Stmts[0].(*ast.VarDecl)
	name := decl.Specs[0].Name.Name
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(name, "_")))
	qt.Assert(t, qt.IsTrue(ast.IsValidIdent(name)))
}

func TestInvalidTarget(t *testing.T) {
	f, err := parser.ParseFile("in.js", `[{bar:`+x24+`},{bar:`+x24+`}];`)
	qt.Assert(t, qt.IsNil(err))
	before := format.String(f)

	err = dedup.PullCommonStructures(f, dedup.Target("es-next"))
	qt.Assert(t, qt.ErrorMatches(err, `invalid target "es-next".*`))
	qt.Assert(t, qt.Equals(format.String(f), before))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	f, err := parser.ParseFile("in.js", `[{bar:`+x24+`},"quux",{bar:`+x24+`}];`)
	qt.Assert(t, qt.IsNil(err))
	err = dedup.PullCommonStructures(f, dedup.Prefix("p"), dedup.Logger(log))
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.StringContains(buf.String(),
		`level=DEBUG msg="dedup: hoist" name=p1 count=2 length=32`))
	qt.Assert(t, qt.StringContains(buf.String(),
		`level=DEBUG msg="dedup: skip" count=1`))
}

func TestDeclareInBlock(t *testing.T) {
	fn, err := parser.ParseExpr("in.js",
		`function(){a([1,2,3,4,5,6,7,8,9,10,11]);b([1,2,3,4,5,6,7,8,9,10,11]);}`)
	qt.Assert(t, qt.IsNil(err))
	body := fn.(*ast.FuncLit).Body

	b := dedup.Pull[ast.Node](dedup.AST{}, body, &dedup.Config{
		Prefix:    "v",
		MinLength: dedup.DefaultMinLength,
		MinSaving: dedup.DefaultMinSaving,
	})
	qt.Assert(t, qt.HasLen(b, 1))
	qt.Assert(t, qt.Equals(format.String(fn),
		`function(){var v1=[1,2,3,4,5,6,7,8,9,10,11];a(v1);b(v1);}`))
}

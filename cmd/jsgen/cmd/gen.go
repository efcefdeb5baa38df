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

package cmd

import (
	"github.com/spf13/cobra"

	"jsgen.dev/go/encoding/gocodec"
	"jsgen.dev/go/encoding/json"
	"jsgen.dev/go/encoding/yaml"
	"jsgen.dev/go/internal/source"
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/token"
	"jsgen.dev/go/tools/dedup"
)

func newGenCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "generate JavaScript from JSON or YAML data",
		Long: `Gen converts JSON or YAML data to a JavaScript module.

The input is read from the given file or from standard input. Its format
is determined by the file extension unless --in is given; standard input
is read as JSON by default. A YAML stream with more than one document is
converted to an array.

By default the value is exported as

	module.exports = <value>;

With --var the value is assigned to a variable instead, and with --expr
the output is the value alone.

With --dedup, array and object literals that occur more than once are
hoisted into variables declared at the start of the output. See
"jsgen help environment" for how to change the defaults of the
corresponding flags.

Examples:

	jsgen gen data.json
	jsgen gen --var config -d -b config.yaml -o config.js
	cat data.json | jsgen gen --expr --path /items/0
`,
		RunE: mkRunE(c, runGen),
	}

	f := cmd.Flags()
	f.String(string(flagIn), "", "input format: json or yaml")
	f.StringP(string(flagPath), "l", "", "JSON pointer selecting the value to convert")
	f.String(string(flagVar), "", "declare the value as a variable of the given name")
	f.Bool(string(flagExpr), false, "print the value as a plain expression")
	f.BoolP(string(flagCanonical), "c", false, "sort object keys")
	f.BoolP(string(flagDedup), "d", false, "hoist repeated array and object literals")
	addDedupFlags(f)
	addOutFlags(f, false)
	return cmd
}

func runGen(cmd *Command, args []string) error {
	filename := inputFile(cmd, args)
	log := cmd.Logger()

	kind := flagIn.String(cmd)
	if kind == "" {
		kind = source.Kind(filename)
	}
	b := readInput(cmd, filename)

	var v any
	var err error
	switch kind {
	case "yaml":
		v, err = yaml.Decode(filename, b)
	case "json", "":
		v, err = json.Decode(filename, b)
	default:
		err = errors.Newf(token.NoPos, "unsupported input format %q", kind)
	}
	exitOnErr(cmd, err, true)
	log.Debug("decoded input", "file", filename, "format", kind)

	if p := flagPath.String(cmd); p != "" {
		v, err = json.Pointer(p).Lookup(v)
		exitOnErr(cmd, err, true)
	}

	var opts []gocodec.Option
	if flagCanonical.Bool(cmd) {
		opts = append(opts, gocodec.Canonical())
	}
	x, err := gocodec.Encode(v, opts...)
	exitOnErr(cmd, err, true)

	f, err := genFile(filename, x, flagVar.String(cmd), flagExpr.Bool(cmd))
	exitOnErr(cmd, err, true)

	if flagDedup.Bool(cmd) {
		err := dedup.PullCommonStructures(f, dedupOptions(cmd)...)
		exitOnErr(cmd, err, true)
	}

	out, err := format.Node(f, formatOptions(cmd)...)
	exitOnErr(cmd, err, true)
	writeOutput(cmd, out)
	return nil
}

// genFile wraps x in the top-level statement selected by name and expr.
func genFile(filename string, x ast.Expr, name string, expr bool) (*ast.File, error) {
	var stmt ast.Stmt
	switch {
	case name != "" && expr:
		return nil, errors.Newf(token.NoPos, "--var and --expr are mutually exclusive")

	case expr:
		stmt = &ast.ExprStmt{X: x}

	case name != "":
		if !ast.IsValidIdent(name) || token.IsKeyword(name) {
			return nil, errors.Newf(token.NoPos, "invalid variable name %q", name)
		}
		stmt = &ast.VarDecl{
			Tok:   token.VAR,
			Specs: []*ast.VarSpec{{Name: ast.NewIdent(name), Value: x}},
		}

	default:
		stmt = &ast.ExprStmt{X: &ast.AssignExpr{
			Lhs: &ast.SelectorExpr{X: ast.NewIdent("module"), Sel: ast.NewIdent("exports")},
			Tok: token.ASSIGN,
			Rhs: x,
		}}
	}
	return &ast.File{Filename: filename, Stmts: []ast.Stmt{stmt}}, nil
}

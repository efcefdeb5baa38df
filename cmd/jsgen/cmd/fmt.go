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

	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/parser"
	"jsgen.dev/go/js/simplify"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [-s] [file]",
		Short: "format a JavaScript file",
		Long: `Fmt parses a JavaScript file, or standard input, and prints it in
canonical style. Output is beautified by default; use --beautify=false
for compact output.
`,
		RunE: mkRunE(c, runFmt),
	}
	cmd.Flags().BoolP(string(flagSimplify), "s", false,
		"simplify output by folding constant expressions")
	addOutFlags(cmd.Flags(), true)
	return cmd
}

func runFmt(cmd *Command, args []string) error {
	filename := inputFile(cmd, args)
	f, err := parser.ParseFile(filename, readInput(cmd, filename))
	exitOnErr(cmd, err, true)

	if flagSimplify.Bool(cmd) {
		f = simplify.New().Simplify(f)
	}

	out, err := format.Node(f, formatOptions(cmd)...)
	exitOnErr(cmd, err, true)
	writeOutput(cmd, out)
	return nil
}

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
	"jsgen.dev/go/tools/dedup"
)

func newDedupCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedup [file]",
		Short: "hoist repeated literals of a JavaScript file",
		Long: `Dedup reads a JavaScript file, or standard input, and replaces array
and object literals that occur more than once by references to variables
declared at the start of the output.

A group of equal literals is hoisted only if each literal is longer than
--min-length characters and the number of occurrences times the length
exceeds --min-saving. Smaller literals are hoisted first unless
--longest-first is given.

Examples:

	jsgen dedup bundle.js -o bundle.min.js
	jsgen dedup --prefix=_c --target=2015 -b data.js
`,
		RunE: mkRunE(c, runDedup),
	}
	addDedupFlags(cmd.Flags())
	addOutFlags(cmd.Flags(), false)
	return cmd
}

func runDedup(cmd *Command, args []string) error {
	filename := inputFile(cmd, args)
	f, err := parser.ParseFile(filename, readInput(cmd, filename))
	exitOnErr(cmd, err, true)

	err = dedup.PullCommonStructures(f, dedupOptions(cmd)...)
	exitOnErr(cmd, err, true)

	out, err := format.Node(f, formatOptions(cmd)...)
	exitOnErr(cmd, err, true)
	writeOutput(cmd, out)
	return nil
}

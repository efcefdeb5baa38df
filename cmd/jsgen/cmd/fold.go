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
	"jsgen.dev/go/tools/fold"
)

func newFoldCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold <expression>",
		Short: "fold a constant JavaScript expression",
		Long: `Fold evaluates the operators of a JavaScript expression whose operands
are literals and prints the result. Parts of the expression that cannot be
evaluated are printed unchanged.

Examples:

	$ jsgen fold '60*60*24'
	86400
	$ jsgen fold '[1<<10, x*(2+3)]'
	[1024,x*5]
`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runFold),
	}
	addOutFlags(cmd.Flags(), false)
	return cmd
}

func runFold(cmd *Command, args []string) error {
	x, err := fold.ParseExpression(args[0])
	exitOnErr(cmd, err, true)

	out, err := format.Node(fold.Constant(x), formatOptions(cmd)...)
	exitOnErr(cmd, err, true)
	writeOutput(cmd, out)
	return nil
}

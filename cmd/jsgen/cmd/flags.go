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
	"fmt"

	"github.com/spf13/pflag"

	"jsgen.dev/go/internal/jsdebug"
)

// Common flags
const (
	flagBeautify     flagName = "beautify"
	flagCanonical    flagName = "canonical"
	flagDedup        flagName = "dedup"
	flagExpr         flagName = "expr"
	flagIn           flagName = "in"
	flagIndent       flagName = "indent"
	flagLongestFirst flagName = "longest-first"
	flagMinLength    flagName = "min-length"
	flagMinSaving    flagName = "min-saving"
	flagOut          flagName = "out"
	flagPath         flagName = "path"
	flagPrefix       flagName = "prefix"
	flagSimplify     flagName = "simplify"
	flagTarget       flagName = "target"
	flagVar          flagName = "var"
	flagVerbose      flagName = "verbose"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false,
		"print debug information to standard error")
}

func addOutFlags(f *pflag.FlagSet, beautify bool) {
	f.StringP(string(flagOut), "o", "",
		"write output to the given file instead of standard output")
	f.BoolP(string(flagBeautify), "b", beautify,
		"print one property or statement per line")
	f.Int(string(flagIndent), 4,
		"number of spaces per indentation level of beautified output")
}

// addDedupFlags adds the flags that configure hoisting. Their defaults are
// taken from JSGEN_DEBUG, so jsdebug.Init must have been called.
func addDedupFlags(f *pflag.FlagSet) {
	f.String(string(flagPrefix), jsdebug.Flags.Prefix,
		"prefix of hoisted variable names (default random)")
	f.Bool(string(flagLongestFirst), false,
		"hoist the longest repeated literals first")
	f.Int(string(flagMinLength), jsdebug.Flags.MinLength,
		"minimum printed length of a literal to be hoisted")
	f.Int(string(flagMinSaving), jsdebug.Flags.MinSaving,
		"minimum number of occurrences times printed length of a hoisted group")
	f.String(string(flagTarget), "",
		`JavaScript version of the output, such as "5" or "2015"; declarations use const from version 6 on`)
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) IsSet(cmd *Command) bool {
	f.ensureAdded(cmd)
	return cmd.Flags().Changed(string(f))
}

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

import "github.com/spf13/cobra"

var helpTopics = []*cobra.Command{
	environmentHelp,
	formatsHelp,
}

var environmentHelp = &cobra.Command{
	Use:   "environment",
	Short: "environment variables",
	Long: `
The jsgen command consults environment variables for configuration.
If an environment variable is unset or empty, sensible default setting is used.

	JSGEN_DEBUG
		A comma-separated list of settings of the form name or name=value.
		Names are case insensitive. The following settings are supported:

		log
			Print debug information to standard error, as --verbose does.
		min_length=20
			Default of the --min-length flag.
		min_saving=10
			Default of the --min-saving flag.
		prefix=name
			Default of the --prefix flag. If empty, a random prefix is used.

		For example:

			JSGEN_DEBUG=log,min_saving=40 jsgen dedup bundle.js

	LC_ALL, LANG
		The locale used to print error messages.
`,
}

var formatsHelp = &cobra.Command{
	Use:   "formats",
	Short: "supported input formats",
	Long: `
The gen command accepts the following input formats. The format is
derived from the file extension, or set explicitly with --in.

	json    .json
		Numbers keep their exact source text. Duplicate keys are
		allowed; the last value wins but the key keeps its first position.

	yaml    .yaml .yml
		Anchors, aliases, and merge keys are resolved. A stream of
		multiple documents is converted to an array. Binary values
		become base64 strings.

Data read from standard input is treated as JSON unless --in is given.
`,
}

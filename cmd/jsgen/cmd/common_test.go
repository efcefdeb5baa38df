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
	"flag"
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/encoding/gocodec"
	"jsgen.dev/go/js/format"
)

var update = flag.Bool("update", false, "update the test files")

func TestGenFile(t *testing.T) {
	testCases := []struct {
		name string
		expr bool
		want string
		err  string
	}{{
		want: `module.exports=[1,{a:"x"}];`,
	}, {
		name: "data",
		want: `var data=[1,{a:"x"}];`,
	}, {
		name: "$_0",
		want: `var $_0=[1,{a:"x"}];`,
	}, {
		expr: true,
		want: `[1,{a:"x"}];`,
	}, {
		name: "0a",
		err:  `invalid variable name "0a"`,
	}, {
		name: "const",
		err:  `invalid variable name "const"`,
	}, {
		name: "x",
		expr: true,
		err:  "--var and --expr are mutually exclusive",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := gocodec.Encode([]any{1, gocodec.NewObject(gocodec.Field{Key: "a", Value: "x"})})
			qt.Assert(t, qt.IsNil(err))

			f, err := genFile("in.json", x, tc.name, tc.expr)
			if tc.err != "" {
				qt.Assert(t, qt.ErrorMatches(err, tc.err))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(f.Filename, "in.json"))
			qt.Assert(t, qt.Equals(format.String(f), tc.want))
		})
	}
}

func TestGetLang(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "nl_NL.UTF-8")
	qt.Assert(t, qt.Equals(getLang().String(), "nl-NL"))

	t.Setenv("LC_ALL", "de_CH")
	qt.Assert(t, qt.Equals(getLang().String(), "de-CH"))
}

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

package literal

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{in: "", out: `""`},
		{in: "foo", out: `"foo"`},
		{in: "\x00", out: `"\u0000"`},
		{in: "abc\xffdef", out: `"abc` + "�" + `def"`},
		{in: "\b\f\r\n\t", out: `"\b\f\r\n\t"`},
		{in: "\v", out: `"\u000b"`},
		{in: "\"", out: `"\""`},
		{in: "\\", out: `"\\"`},
		{in: "'", out: `"'"`},
		{in: "☺", out: `"☺"`},
		{in: "\u2028\u2029", out: `"\u2028\u2029"`},
		{in: "\x7f", out: `"\u007f"`},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got := Quote(tc.in)
			qt.Assert(t, qt.Equals(got, tc.out))

			str, err := Unquote(got)
			qt.Assert(t, qt.IsNil(err))
			want := tc.in
			if want == "abc\xffdef" {
				want = "abc�def"
			}
			qt.Assert(t, qt.Equals(str, want))
		})
	}
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		in  string
		out string
		err error
	}{
		{in: `""`, out: ""},
		{in: `''`, out: ""},
		{in: `'foo'`, out: "foo"},
		{in: `"it's"`, out: "it's"},
		{in: `'say "hi"'`, out: `say "hi"`},
		{in: `'it\'s'`, out: "it's"},
		{in: `"\x41B\u{43}"`, out: "ABC"},
		{in: `"\u{1F600}"`, out: "\U0001F600"},
		{in: `"😀"`, out: "\U0001F600"},
		{in: `"\0"`, out: "\x00"},
		{in: `"\q\é"`, out: "qé"},
		{in: "\"a\\\nb\"", out: "ab"},
		{in: "\"a\\\r\nb\"", out: "ab"},
		{in: `"\v"`, out: "\v"},

		{in: `"`, err: errSyntax},
		{in: "`a`", err: errInvalidQuote},
		{in: `"a'`, err: errUnterminated},
		{in: `"a"b"`, err: errSyntax},
		{in: "\"a\nb\"", err: errNewlineInString},
		{in: `"\x4"`, err: errInvalidHexEscape},
		{in: `"\u{110000}"`, err: errInvalidCodePoint},
		{in: `"\ud83d"`, err: errUnmatchedSurrogate},
		{in: `"\01"`, err: errInvalidEscape},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Unquote(tc.in)
			if tc.err != nil {
				qt.Assert(t, qt.ErrorIs(err, tc.err))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tc.out))
		})
	}
}

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

package json_test

import (
	encjson "encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/encoding/gocodec"
	"jsgen.dev/go/encoding/json"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		out  any
	}{{
		name: "scalars",
		in:   `[null, true, false, "aé\n", 1, -2.5e3, 12345678901234567890]`,
		out: []any{nil, true, false, "aé\n",
			encjson.Number("1"), encjson.Number("-2.5e3"), encjson.Number("12345678901234567890")},
	}, {
		name: "key order is kept",
		in:   `{"b": 1, "a": {"d": [], "c": {}}}`,
		out: gocodec.NewObject(
			gocodec.Field{Key: "b", Value: encjson.Number("1")},
			gocodec.Field{Key: "a", Value: gocodec.NewObject(
				gocodec.Field{Key: "d", Value: []any{}},
				gocodec.Field{Key: "c", Value: gocodec.NewObject()},
			)},
		),
	}, {
		name: "duplicate keys",
		in:   `{"a": 1, "b": 2, "a": 3}`,
		out: gocodec.NewObject(
			gocodec.Field{Key: "a", Value: encjson.Number("3")},
			gocodec.Field{Key: "b", Value: encjson.Number("2")},
		),
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := json.Decode("test.json", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.DeepEquals(v, tc.out))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		err  string
	}{{
		name: "empty",
		in:   "  \n",
		err:  `invalid JSON for file "test.json": empty input`,
	}, {
		name: "syntax",
		in:   "{\n  \"a\": 1,\n  \"b\" 2\n}",
		err:  `invalid JSON for file "test.json": invalid character '2' after object key`,
	}, {
		name: "truncated",
		in:   `{"a": [1, 2`,
		err:  `invalid JSON for file "test.json": unexpected EOF`,
	}, {
		name: "trailing data",
		in:   `{} []`,
		err:  `invalid JSON for file "test.json": trailing data`,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := json.Decode("test.json", tc.in)
			qt.Assert(t, qt.ErrorMatches(err, tc.err))
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := json.Decode("test.json", "{\n  \"a\": 1,\n  \"b\" 2\n}")
	qt.Assert(t, qt.IsNotNil(err))

	pos := errors.Positions(err)
	qt.Assert(t, qt.HasLen(pos, 1))
	qt.Assert(t, qt.Equals(pos[0].Filename(), "test.json"))
	qt.Assert(t, qt.Equals(pos[0].Line(), 3))
}

func TestDecoderStream(t *testing.T) {
	d := json.NewDecoder("stream.json", strings.NewReader(`{"a":1} [2] "three"`))

	var got []string
	for {
		v, err := d.Decode()
		if err == io.EOF {
			break
		}
		qt.Assert(t, qt.IsNil(err))
		x, err := gocodec.Encode(v)
		qt.Assert(t, qt.IsNil(err))
		got = append(got, format.String(x))
	}
	qt.Assert(t, qt.DeepEquals(got, []string{`{a:1}`, `[2]`, `"three"`}))
}

func TestEncodeDecoded(t *testing.T) {
	v, err := json.Decode("test.json", `{"z": 1e400, "big": 123456789012345678901234567890, "k-1": [0.1]}`)
	qt.Assert(t, qt.IsNil(err))
	x, err := gocodec.Encode(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(format.String(x), `{z:1e400,big:123456789012345678901234567890,"k-1":[0.1]}`))
}

func TestValid(t *testing.T) {
	qt.Assert(t, qt.IsTrue(json.Valid([]byte(`{"a": [1]}`))))
	qt.Assert(t, qt.IsFalse(json.Valid([]byte(`{a: [1]}`))))
}

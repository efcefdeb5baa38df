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

package envflag

import (
	"testing"

	"github.com/go-quicktest/qt"
)

type boolFlags struct {
	Foo    bool
	BarBaz bool

	DefaultFalse bool `envflag:"default:false"`
	DefaultTrue  bool `envflag:"default:true"`
}

type valueFlags struct {
	Name  string `envflag:"default:foo"`
	Count int    `envflag:"default:5"`
}

type namedFlags struct {
	MinLength int    `envflag:"name:min_length,default:20"`
	Prefix    string `envflag:"name:PREFIX"`
	Log       bool
	internal  int
}

type deprecatedFlags struct {
	Foo bool `envflag:"deprecated"`
	Bar bool `envflag:"deprecated,default:true"`
}

// A parseTest sets TEST_VAR to env and expects Init to leave want in the
// flags. The error must match err, or ErrInvalid if invalid is set.
type parseTest[T comparable] struct {
	name    string
	env     string
	want    T
	err     string
	invalid bool
}

func runParseTests[T comparable](t *testing.T, tests []parseTest[T]) {
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_VAR", tc.env)
			var got T
			err := Init(&got, "TEST_VAR")
			switch {
			case tc.invalid:
				qt.Assert(t, qt.ErrorIs(err, ErrInvalid))
			case tc.err != "":
				qt.Assert(t, qt.ErrorMatches(err, tc.err))
			default:
				qt.Assert(t, qt.IsNil(err))
			}
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}

func TestBoolFlags(t *testing.T) {
	runParseTests(t, []parseTest[boolFlags]{{
		name: "Empty",
		want: boolFlags{DefaultTrue: true},
	}, {
		name: "JustCommas",
		env:  ",,",
		want: boolFlags{DefaultTrue: true},
	}, {
		name: "Unknown",
		env:  "ratchet",
		want: boolFlags{DefaultTrue: true},
		err:  `cannot parse TEST_VAR: unknown flag "ratchet"`,
	}, {
		name: "Set",
		env:  "foo",
		want: boolFlags{Foo: true, DefaultTrue: true},
	}, {
		name: "SetExtraCommas",
		env:  ",foo,",
		want: boolFlags{Foo: true, DefaultTrue: true},
	}, {
		name: "SetTwice",
		env:  "foo,foo",
		want: boolFlags{Foo: true, DefaultTrue: true},
	}, {
		name: "SetWithUnknown",
		env:  "foo,other",
		want: boolFlags{Foo: true, DefaultTrue: true},
		err:  `cannot parse TEST_VAR: unknown flag "other"`,
	}, {
		name: "TwoFlags",
		env:  "barbaz,foo",
		want: boolFlags{Foo: true, BarBaz: true, DefaultTrue: true},
	}, {
		name: "ToggleDefaultsNumeric",
		env:  "defaulttrue=0,defaultfalse=1",
		want: boolFlags{DefaultFalse: true},
	}, {
		name: "ToggleDefaultsWords",
		env:  "defaulttrue=false,defaultfalse=true",
		want: boolFlags{DefaultFalse: true},
	}, {
		name: "MultipleUnknown",
		env:  "other1,other2,foo",
		want: boolFlags{Foo: true, DefaultTrue: true},
		err:  "cannot parse TEST_VAR: unknown flag \"other1\"\nunknown flag \"other2\"",
	}, {
		name:    "InvalidIntForBool",
		env:     "foo=2",
		want:    boolFlags{DefaultTrue: true},
		invalid: true,
	}})
}

func TestValueFlags(t *testing.T) {
	runParseTests(t, []parseTest[valueFlags]{{
		name: "String",
		env:  "name=bar",
		want: valueFlags{Name: "bar", Count: 5},
	}, {
		name: "StringEmpty",
		env:  "name=",
		want: valueFlags{Count: 5},
	}, {
		name: "StringAlone",
		env:  "name",
		want: valueFlags{Name: "foo", Count: 5},
		err:  `cannot parse TEST_VAR: value needed for string flag "name"`,
	}, {
		name: "Int",
		env:  "count=123",
		want: valueFlags{Name: "foo", Count: 123},
	}, {
		name:    "IntEmpty",
		env:     "count=",
		want:    valueFlags{Name: "foo", Count: 5},
		invalid: true,
	}})
}

func TestNamedFlags(t *testing.T) {
	runParseTests(t, []parseTest[namedFlags]{{
		name: "Defaults",
		want: namedFlags{MinLength: 20},
	}, {
		name: "Set",
		env:  "min_length=5,prefix=v,log",
		want: namedFlags{MinLength: 5, Prefix: "v", Log: true},
	}, {
		name: "CaseInsensitive",
		env:  "MIN_LENGTH=7,Log=true",
		want: namedFlags{MinLength: 7, Log: true},
	}, {
		name: "FieldNameReplacedByTag",
		env:  "minlength=7",
		want: namedFlags{MinLength: 20},
		err:  `cannot parse TEST_VAR: unknown flag "minlength=7"`,
	}, {
		name: "Unexported",
		env:  "internal=1",
		want: namedFlags{MinLength: 20},
		err:  `cannot parse TEST_VAR: unknown flag "internal=1"`,
	}})
}

func TestDeprecatedFlags(t *testing.T) {
	runParseTests(t, []parseTest[deprecatedFlags]{{
		name: "FalseDefault",
		env:  "foo=1",
		want: deprecatedFlags{Bar: true},
		err:  `cannot parse TEST_VAR: cannot change default value of deprecated flag "foo"`,
	}, {
		name: "SameAsFalseDefault",
		env:  "foo=false",
		want: deprecatedFlags{Bar: true},
	}, {
		name: "TrueDefault",
		env:  "bar=0",
		want: deprecatedFlags{Bar: true},
		err:  `cannot parse TEST_VAR: cannot change default value of deprecated flag "bar"`,
	}, {
		name: "SameAsTrueDefault",
		env:  "bar=1",
		want: deprecatedFlags{Bar: true},
	}})
}

func TestBadTags(t *testing.T) {
	var unknown struct {
		A bool `envflag:"other"`
	}
	qt.Assert(t, qt.ErrorMatches(Parse(&unknown, ""), `unknown envflag tag "other"`))

	var dup struct {
		A bool `envflag:"name:x"`
		X bool
	}
	qt.Assert(t, qt.ErrorMatches(Parse(&dup, ""), `duplicate flag name "x"`))

	var emptyName struct {
		A bool `envflag:"name:"`
	}
	qt.Assert(t, qt.ErrorMatches(Parse(&emptyName, ""), `empty name in envflag tag of field A`))

	var badDefault struct {
		N int `envflag:"default:many"`
	}
	qt.Assert(t, qt.ErrorIs(Parse(&badDefault, ""), ErrInvalid))

	var badKind struct {
		F float64 `envflag:"default:1.5"`
	}
	qt.Assert(t, qt.ErrorMatches(Parse(&badKind, ""), `unsupported kind float64`))
}

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

// Package envflag parses comma-separated lists of flags, such as the value
// of JSGEN_DEBUG, into the fields of a struct.
package envflag

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Init uses Parse with the contents of the given environment variable as input.
func Init[T any](flags *T, envVar string) error {
	if err := Parse(flags, os.Getenv(envVar)); err != nil {
		return fmt.Errorf("cannot parse %s: %w", envVar, err)
	}
	return nil
}

// Parse initializes the exported fields of flags from their struct tags and
// then from the flags listed in env.
//
// A field is named by its lower-cased Go name unless the tag says otherwise.
// Tag entries are separated by commas:
//
//	name:min_length   use min_length as the flag name
//	default:20        initial value other than the zero value
//	deprecated        the flag may only be set to its default value
//
// The env string is a comma-separated list of name=value pairs. Names are
// case insensitive and empty elements are ignored. The value of a boolean
// flag may be omitted, meaning true. Booleans are parsed with
// [strconv.ParseBool], integers with [strconv.Atoi], and strings are taken
// as is.
func Parse[T any](flags *T, env string) error {
	fv := reflect.ValueOf(flags).Elem()
	fields, err := fieldsOf(fv)
	if err != nil {
		return err
	}

	var errs []error
	for _, elem := range strings.Split(env, ",") {
		if elem == "" {
			continue
		}
		if err := set(fv, fields, elem); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// A field describes the struct field backing a flag.
type field struct {
	index      int
	deprecated bool
}

// fieldsOf applies the defaults of the exported fields of v and indexes
// them by flag name.
func fieldsOf(v reflect.Value) (map[string]field, error) {
	fields := make(map[string]field)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		f := field{index: i}
		name := strings.ToLower(sf.Name)
		var def *string
		for _, entry := range strings.Split(sf.Tag.Get("envflag"), ",") {
			key, arg, hasArg := strings.Cut(entry, ":")
			switch key {
			case "":
			case "default":
				def = &arg
			case "name":
				if arg == "" {
					return nil, fmt.Errorf("empty name in envflag tag of field %s", sf.Name)
				}
				name = strings.ToLower(arg)
			case "deprecated":
				if hasArg {
					return nil, fmt.Errorf("cannot have a value for deprecated tag")
				}
				f.deprecated = true
			default:
				return nil, fmt.Errorf("unknown envflag tag %q", entry)
			}
		}
		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("duplicate flag name %q", name)
		}
		if def != nil {
			x, err := parseValue(name, sf.Type, *def)
			if err != nil {
				return nil, err
			}
			v.Field(i).Set(x)
		}
		fields[name] = f
	}
	return fields, nil
}

// set applies a single name or name=value element to v.
func set(v reflect.Value, fields map[string]field, elem string) error {
	name, str, hasValue := strings.Cut(elem, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	f, ok := fields[name]
	if !ok {
		return fmt.Errorf("unknown flag %q", elem)
	}

	fv := v.Field(f.index)
	var x reflect.Value
	switch {
	case hasValue:
		var err error
		if x, err = parseValue(name, fv.Type(), str); err != nil {
			return err
		}
	case fv.Kind() == reflect.Bool:
		// Like -knob for Go flags.
		x = reflect.ValueOf(true).Convert(fv.Type())
	default:
		return fmt.Errorf("value needed for %s flag %q", fv.Kind(), name)
	}

	if f.deprecated {
		if !fv.Equal(x) {
			return fmt.Errorf("cannot change default value of deprecated flag %q", name)
		}
		return nil
	}
	fv.Set(x)
	return nil
}

func parseValue(name string, t reflect.Type, str string) (reflect.Value, error) {
	var x any
	var err error
	switch t.Kind() {
	case reflect.Bool:
		x, err = strconv.ParseBool(str)
	case reflect.Int:
		x, err = strconv.Atoi(str)
	case reflect.String:
		x = str
	default:
		return reflect.Value{}, errInvalid{fmt.Errorf("unsupported kind %s", t.Kind())}
	}
	if err != nil {
		return reflect.Value{}, errInvalid{fmt.Errorf("invalid %s value for %s: %v", t.Kind(), name, err)}
	}
	return reflect.ValueOf(x).Convert(t), nil
}

// ErrInvalid is matched by errors for malformed values.
var ErrInvalid = errors.New("invalid value")

type errInvalid struct{ error }

func (errInvalid) Is(err error) bool {
	return err == ErrInvalid
}

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

package gocodec

import (
	"cmp"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/mpvl/unique"
	"golang.org/x/text/encoding/unicode"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/ast/astutil"
	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

// Encode converts v to a JavaScript expression.
func Encode(v any, opts ...Option) (ast.Expr, error) {
	e := &encoder{}
	for _, o := range opts {
		o(e)
	}
	return e.encode(v)
}

type encoder struct {
	canonical bool

	// path holds the references currently being encoded, to detect cycles.
	path map[ref]bool
}

type ref struct {
	ptr uintptr
	len int
	typ reflect.Type
}

var textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

func (e *encoder) encode(v any) (ast.Expr, error) {
	switch x := v.(type) {
	case nil:
		return ast.NewNull(), nil

	case ast.Expr:
		return astutil.Clone(x), nil

	case UndefinedType:
		return ast.NewIdent("undefined"), nil

	case *Object:
		if x == nil {
			return ast.NewNull(), nil
		}
		return e.visit(reflect.ValueOf(x), x, func() (ast.Expr, error) {
			return e.object(x.Fields)
		})

	case *Func:
		if x == nil {
			return ast.NewNull(), nil
		}
		return e.function(x)

	case Func:
		return e.function(&x)

	case RegExp:
		return &ast.BasicLit{Kind: token.REGEXP, Value: x.String()}, nil

	case *regexp.Regexp:
		if x == nil {
			return ast.NewNull(), nil
		}
		return e.encode(fromGoRegexp(x))

	case bool:
		return ast.NewBool(x), nil

	case string:
		return encodeString(x), nil

	case json.Number:
		var info literal.NumInfo
		if err := literal.ParseNum(x.String(), &info); err != nil {
			return nil, unsupportedValue(v)
		}
		return numExpr(x.String()), nil

	case *big.Int:
		if x == nil {
			return ast.NewNull(), nil
		}
		return numExpr(x.String()), nil

	case *apd.Decimal:
		if x == nil {
			return ast.NewNull(), nil
		}
		return decimalExpr(x), nil

	case int:
		return numExpr(strconv.FormatInt(int64(x), 10)), nil
	case int8:
		return numExpr(strconv.FormatInt(int64(x), 10)), nil
	case int16:
		return numExpr(strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return numExpr(strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return numExpr(strconv.FormatInt(x, 10)), nil
	case uint:
		return numExpr(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return numExpr(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return numExpr(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return numExpr(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return numExpr(strconv.FormatUint(x, 10)), nil
	case uintptr:
		return numExpr(strconv.FormatUint(uint64(x), 10)), nil
	case float64:
		return numExpr(literal.FormatFloat(x)), nil
	case float32:
		// Use the shortest decimal that identifies the float32 value.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', -1, 32), 64)
		return numExpr(literal.FormatFloat(f)), nil

	case []byte:
		return encodeString(base64.StdEncoding.EncodeToString(x)), nil

	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("gocodec: %T: %w", v, err)
		}
		return encodeString(string(b)), nil
	}
	return e.reflectValue(v)
}

func (e *encoder) reflectValue(v any) (ast.Expr, error) {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Bool:
		return ast.NewBool(value.Bool()), nil

	case reflect.String:
		return encodeString(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numExpr(strconv.FormatInt(value.Int(), 10)), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return numExpr(strconv.FormatUint(value.Uint(), 10)), nil

	case reflect.Float32, reflect.Float64:
		return e.encode(value.Float())

	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return ast.NewNull(), nil
		}
		if value.Kind() == reflect.Interface {
			return e.encode(value.Elem().Interface())
		}
		return e.visit(value, v, func() (ast.Expr, error) {
			return e.encode(value.Elem().Interface())
		})

	case reflect.Struct:
		return e.structValue(value)

	case reflect.Map:
		if value.IsNil() {
			return ast.NewNull(), nil
		}
		return e.visit(value, v, func() (ast.Expr, error) {
			return e.mapValue(value)
		})

	case reflect.Slice:
		if value.IsNil() {
			return ast.NewNull(), nil
		}
		return e.visit(value, v, func() (ast.Expr, error) {
			return e.list(value)
		})

	case reflect.Array:
		return e.list(value)
	}
	return nil, unsupportedValue(v)
}

// visit calls f while recording value as being encoded. It fails if value is
// already being encoded, as the value is then cyclic.
func (e *encoder) visit(value reflect.Value, v any, f func() (ast.Expr, error)) (ast.Expr, error) {
	r := ref{ptr: value.Pointer(), typ: value.Type()}
	if value.Kind() == reflect.Slice {
		r.len = value.Len()
	}
	if e.path[r] {
		return nil, &UnsupportedValueError{Value: v, str: fmt.Sprintf("of type %T: cyclic value", v)}
	}
	if e.path == nil {
		e.path = map[ref]bool{}
	}
	e.path[r] = true
	defer delete(e.path, r)
	return f()
}

func (e *encoder) list(value reflect.Value) (ast.Expr, error) {
	a := &ast.ArrayLit{Elts: []ast.Expr{}}
	for i := 0; i < value.Len(); i++ {
		x, err := e.encode(value.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		a.Elts = append(a.Elts, x)
	}
	return a, nil
}

func (e *encoder) mapValue(value reflect.Value) (ast.Expr, error) {
	key := value.Type().Key()
	switch key.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
	default:
		if !key.Implements(textMarshaler) {
			return nil, unsupportedValue(value.Interface())
		}
	}

	values := map[string]any{}
	keys := make([]string, 0, value.Len())
	iter := value.MapRange()
	for iter.Next() {
		k, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		values[k] = iter.Value().Interface()
	}
	// Go maps have no order: always emit keys sorted. Keys are unique
	// already unless mapKey maps two of them to the same text.
	slices.SortFunc(keys, compareKeys)
	unique.Strings(&keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{k, values[k]}
	}
	return e.object(fields)
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("gocodec: map key: %w", err)
		}
		return string(b), nil
	}
	return fmt.Sprint(k.Interface()), nil
}

func (e *encoder) structValue(value reflect.Value) (ast.Expr, error) {
	var fields []Field
	e.structFields(value, &fields)
	return e.object(fields)
}

// structFields collects the exported fields of the struct value following
// the conventions of encoding/json.
func (e *encoder) structFields(value reflect.Value, fields *[]Field) {
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		val := value.Field(i)
		name, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Ptr {
				if val.IsNil() {
					continue
				}
				ft, val = ft.Elem(), val.Elem()
			}
			if ft.Kind() == reflect.Struct {
				e.structFields(val, fields)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if strings.Contains(","+opts+",", ",omitempty,") && val.IsZero() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		*fields = append(*fields, Field{name, val.Interface()})
	}
}

// compareKeys orders property names by their UTF-16 code units, the order
// JavaScript uses when comparing strings.
func compareKeys(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			if ra >= 0x10000 && rb >= 0x10000 {
				return cmp.Compare(ra, rb)
			}
			return cmp.Compare(firstUnit(ra), firstUnit(rb))
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

// firstUnit returns the first UTF-16 code unit of r.
func firstUnit(r rune) rune {
	if r >= 0x10000 {
		hi, _ := utf16.EncodeRune(r)
		return hi
	}
	return r
}

func (e *encoder) object(fields []Field) (ast.Expr, error) {
	if e.canonical {
		fields = slices.Clone(fields)
		slices.SortStableFunc(fields, func(a, b Field) int {
			return compareKeys(a.Key, b.Key)
		})
	}
	obj := ast.NewObject()
	for _, f := range fields {
		x, err := e.encode(f.Value)
		if err != nil {
			return nil, err
		}
		obj.Props = append(obj.Props, ast.NewProperty(f.Key, x))
	}
	return obj, nil
}

func (e *encoder) function(f *Func) (ast.Expr, error) {
	fn, err := parseFunc(f.String())
	if err != nil {
		return nil, unsupportedValue(f)
	}
	return astutil.Clone(fn), nil
}

func encodeString(s string) *ast.BasicLit {
	s, _ = unicode.UTF8.NewEncoder().String(s)
	return ast.NewString(s)
}

// numExpr returns the expression for the number with the given decimal
// representation. Negative numbers are represented as a negation.
func numExpr(s string) ast.Expr {
	s, neg := strings.CutPrefix(s, "-")
	var x ast.Expr
	switch s {
	case "NaN", "Infinity":
		x = ast.NewIdent(s)
	default:
		x = &ast.BasicLit{Kind: token.NUMBER, Value: s}
	}
	if neg {
		x = &ast.UnaryExpr{Op: token.SUB, X: x}
	}
	return x
}

func decimalExpr(d *apd.Decimal) ast.Expr {
	var s string
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		s = "NaN"
	case apd.Infinite:
		s = "Infinity"
	default:
		s = strings.ToLower(d.Text('G'))
		s = strings.TrimPrefix(s, "-")
	}
	if d.Negative && d.Form != apd.NaN && d.Form != apd.NaNSignaling {
		s = "-" + s
	}
	return numExpr(s)
}

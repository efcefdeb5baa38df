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
	"math"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

// Decode converts a JavaScript expression to a Go value. Numbers decode to
// float64, strings to string, null to nil, undefined to Undefined, arrays
// to []any, objects to *Object, functions to *Func and regular expression
// literals to RegExp. Duplicate object keys are resolved in favor of the
// last occurrence.
func Decode(x ast.Node) (any, error) {
	switch x := x.(type) {
	case *ast.ParenExpr:
		return Decode(x.X)

	case *ast.BasicLit:
		return decodeLit(x)

	case *ast.Ident:
		switch x.Name {
		case "undefined":
			return Undefined, nil
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		}
		return nil, &UnsupportedNodeError{Node: x, Reason: "reference"}

	case *ast.UnaryExpr:
		switch x.Op {
		case token.SUB:
			v, err := Decode(x.X)
			if err != nil {
				return nil, err
			}
			if f, ok := v.(float64); ok {
				return -f, nil
			}
		case token.VOID:
			if _, ok := x.X.(*ast.BasicLit); ok {
				return Undefined, nil
			}
		}

	case *ast.ArrayLit:
		a := make([]any, len(x.Elts))
		for i, e := range x.Elts {
			v, err := Decode(e)
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return a, nil

	case *ast.ObjectLit:
		o := &Object{}
		for _, p := range x.Props {
			prop, ok := p.(*ast.Property)
			if !ok {
				return nil, &UnsupportedNodeError{Node: x, Reason: "accessor property"}
			}
			key, ok := ast.LabelName(prop.Key)
			if !ok {
				return nil, &UnsupportedNodeError{Node: x, Reason: "invalid key"}
			}
			v, err := Decode(prop.Value)
			if err != nil {
				return nil, err
			}
			o.Set(key, v)
		}
		return o, nil

	case *ast.FuncLit:
		fn := &Func{}
		if x.Name != nil {
			fn.Name = x.Name.Name
		}
		for _, p := range x.Params {
			fn.Params = append(fn.Params, p.Name)
		}
		body, err := format.Stmts(x.Body.List)
		if err != nil {
			return nil, err
		}
		fn.Body = string(body)
		return fn, nil
	}
	return nil, &UnsupportedNodeError{Node: x}
}

func decodeLit(x *ast.BasicLit) (any, error) {
	switch x.Kind {
	case token.NULL:
		return nil, nil
	case token.TRUE:
		return true, nil
	case token.FALSE:
		return false, nil

	case token.NUMBER:
		var info literal.NumInfo
		if err := literal.ParseNum(x.Value, &info); err != nil {
			return nil, &UnsupportedNodeError{Node: x, Reason: err.Error()}
		}
		f, err := info.Float64()
		if err != nil {
			return nil, &UnsupportedNodeError{Node: x, Reason: err.Error()}
		}
		return f, nil

	case token.STRING:
		s, err := literal.Unquote(x.Value)
		if err != nil {
			return nil, &UnsupportedNodeError{Node: x, Reason: err.Error()}
		}
		return s, nil

	case token.REGEXP:
		if r, ok := parseRegExp(x.Value); ok {
			return r, nil
		}
	}
	return nil, &UnsupportedNodeError{Node: x}
}

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

package simplify

import (
	"math"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/literal"
	"jsgen.dev/go/js/token"
)

type kind uint8

const (
	undefinedKind kind = iota
	nullKind
	boolKind
	numberKind
	stringKind
)

// A value is a primitive JavaScript value.
type value struct {
	kind kind
	b    bool
	num  float64
	str  string
}

func number(f float64) value { return value{kind: numberKind, num: f} }
func boolean(b bool) value   { return value{kind: boolKind, b: b} }

// constant reports the value of x if it is a literal primitive value.
func constant(x ast.Expr) (v value, ok bool) {
	switch x := x.(type) {
	case *ast.ParenExpr:
		return constant(x.X)

	case *ast.BasicLit:
		switch x.Kind {
		case token.NULL:
			return value{kind: nullKind}, true
		case token.TRUE:
			return boolean(true), true
		case token.FALSE:
			return boolean(false), true
		case token.NUMBER:
			var info literal.NumInfo
			if literal.ParseNum(x.Value, &info) != nil {
				return v, false
			}
			f, err := info.Float64()
			return number(f), err == nil
		case token.STRING:
			s, err := literal.Unquote(x.Value)
			return value{kind: stringKind, str: s}, err == nil
		}

	case *ast.Ident:
		switch x.Name {
		case "undefined":
			return value{kind: undefinedKind}, true
		case "NaN":
			return number(math.NaN()), true
		case "Infinity":
			return number(math.Inf(1)), true
		}

	case *ast.UnaryExpr:
		if isNegativeNumber(x) {
			v, ok := constant(x.X)
			return number(-v.num), ok
		}
		if isVoidZero(x) {
			return value{kind: undefinedKind}, true
		}
	}
	return v, false
}

// expr returns the shortest canonical expression for v.
func (v value) expr() ast.Expr {
	switch v.kind {
	case nullKind:
		return ast.NewNull()
	case boolKind:
		return ast.NewBool(v.b)
	case stringKind:
		return ast.NewString(v.str)
	case numberKind:
		f := v.num
		switch {
		case math.IsNaN(f):
			return ast.NewIdent("NaN")
		case math.IsInf(f, 0):
			x := ast.Expr(ast.NewIdent("Infinity"))
			if f < 0 {
				x = &ast.UnaryExpr{Op: token.SUB, X: x}
			}
			return x
		case math.Signbit(f):
			return &ast.UnaryExpr{Op: token.SUB, X: numLit(-f)}
		}
		return numLit(f)
	}
	return &ast.UnaryExpr{Op: token.VOID, X: numLit(0)}
}

func numLit(f float64) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.NUMBER, Value: literal.FormatFloat(f)}
}

func (v value) truthy() bool {
	switch v.kind {
	case boolKind:
		return v.b
	case numberKind:
		return v.num != 0 && !math.IsNaN(v.num)
	case stringKind:
		return v.str != ""
	}
	return false
}

// toNumber converts v to a number. Conversion of strings is not supported.
func (v value) toNumber() (float64, bool) {
	switch v.kind {
	case numberKind:
		return v.num, true
	case boolKind:
		if v.b {
			return 1, true
		}
		return 0, true
	case nullKind:
		return 0, true
	case undefinedKind:
		return math.NaN(), true
	}
	return 0, false
}

func (v value) typeOf() string {
	switch v.kind {
	case nullKind:
		return "object"
	case boolKind:
		return "boolean"
	case numberKind:
		return "number"
	case stringKind:
		return "string"
	}
	return "undefined"
}

func toInt32(f float64) int32 {
	return int32(toUint32(f))
}

func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(math.Trunc(f), 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

func unaryOp(op token.Token, v value) (value, bool) {
	switch op {
	case token.NOT:
		return boolean(!v.truthy()), true
	case token.TYPEOF:
		return value{kind: stringKind, str: v.typeOf()}, true
	case token.VOID:
		return value{kind: undefinedKind}, true
	}
	f, ok := v.toNumber()
	if !ok {
		return v, false
	}
	switch op {
	case token.ADD:
		return number(f), true
	case token.SUB:
		return number(-f), true
	case token.TILDE:
		return number(float64(^toInt32(f))), true
	}
	return v, false
}

func binaryOp(op token.Token, a, b value) (value, bool) {
	switch op {
	case token.STRICT_EQL:
		return boolean(strictEqual(a, b)), true
	case token.STRICT_NEQ:
		return boolean(!strictEqual(a, b)), true
	case token.EQL, token.NEQ:
		eq, ok := looseEqual(a, b)
		return boolean(eq == (op == token.EQL)), ok
	}

	x, ok1 := a.toNumber()
	y, ok2 := b.toNumber()
	if !ok1 || !ok2 {
		return a, false
	}
	switch op {
	case token.ADD:
		return number(x + y), true
	case token.SUB:
		return number(x - y), true
	case token.MUL:
		return number(x * y), true
	case token.QUO:
		return number(x / y), true
	case token.REM:
		return number(math.Mod(x, y)), true
	case token.EXP:
		return number(pow(x, y)), true

	case token.AND:
		return number(float64(toInt32(x) & toInt32(y))), true
	case token.OR:
		return number(float64(toInt32(x) | toInt32(y))), true
	case token.XOR:
		return number(float64(toInt32(x) ^ toInt32(y))), true
	case token.SHL:
		return number(float64(toInt32(x) << (toUint32(y) & 31))), true
	case token.SHR:
		return number(float64(toInt32(x) >> (toUint32(y) & 31))), true
	case token.USHR:
		return number(float64(toUint32(x) >> (toUint32(y) & 31))), true

	// Comparisons involving NaN are always false.
	case token.LSS:
		return boolean(x < y), true
	case token.GTR:
		return boolean(x > y), true
	case token.LEQ:
		return boolean(x <= y), true
	case token.GEQ:
		return boolean(x >= y), true
	}
	return a, false
}

// pow differs from math.Pow where JavaScript yields NaN.
func pow(x, y float64) float64 {
	if math.IsNaN(y) || math.Abs(x) == 1 && math.IsInf(y, 0) {
		return math.NaN()
	}
	return math.Pow(x, y)
}

func strictEqual(a, b value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case boolKind:
		return a.b == b.b
	case numberKind:
		return a.num == b.num
	case stringKind:
		return a.str == b.str
	}
	return true
}

func looseEqual(a, b value) (eq, ok bool) {
	nullish := func(v value) bool { return v.kind == nullKind || v.kind == undefinedKind }
	switch {
	case a.kind == b.kind:
		return strictEqual(a, b), true
	case nullish(a) || nullish(b):
		return nullish(a) && nullish(b), true
	case a.kind == stringKind || b.kind == stringKind:
		return false, false
	}
	x, _ := a.toNumber()
	y, _ := b.toNumber()
	return x == y, true
}

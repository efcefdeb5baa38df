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
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/token"
)

// NumInfo contains information about a parsed number literal.
//
// Reusing a NumInfo across parses may avoid memory allocations.
type NumInfo struct {
	src     string
	base    byte
	neg     bool
	isFloat bool // has a fraction or exponent
	buf     []byte
}

// String returns a canonical string representation of the number so that
// it can be parsed with strconv.ParseFloat or apd.
func (p *NumInfo) String() string {
	if len(p.buf) > 0 && p.base == 10 {
		return string(p.buf)
	}
	var d apd.Decimal
	_ = p.decimal(&d)
	return d.String()
}

// Decode decodes the number into d.
func (p *NumInfo) Decode(d *apd.Decimal) error {
	return p.decimal(d)
}

func (p *NumInfo) decimal(d *apd.Decimal) error {
	if p.base != 10 {
		*d = apd.Decimal{}
		b := p.buf
		if p.neg {
			b = b[1:]
		}
		var bi big.Int
		if _, ok := bi.SetString(string(b), int(p.base)); !ok {
			return errors.Newf(token.NoPos, "invalid number %q", p.src)
		}
		d.Coeff.SetMathBigInt(&bi)
		d.Negative = p.neg
		return nil
	}
	if _, _, err := d.SetString(string(p.buf)); err != nil {
		return errors.Newf(token.NoPos, "invalid number %q: %v", p.src, err)
	}
	return nil
}

// Float64 returns the value of the number as a float64, rounded to the
// nearest representable value as JavaScript does.
func (p *NumInfo) Float64() (float64, error) {
	if p.base != 10 {
		var d apd.Decimal
		if err := p.decimal(&d); err != nil {
			return 0, err
		}
		return d.Float64()
	}
	f, err := strconv.ParseFloat(string(p.buf), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Newf(token.NoPos, "invalid number %q: %v", p.src, err)
	}
	return f, nil
}

// IsInt reports whether the literal is an integer literal.
func (p *NumInfo) IsInt() bool {
	return !p.isFloat
}

// Base returns the base of the number literal.
func (p *NumInfo) Base() int {
	return int(p.base)
}

// ParseNum parses s and populates NumInfo with the result.
//
// Accepted forms are decimal integers and floats with an optional exponent,
// and integers with a 0x, 0o, or 0b prefix. Underscore separators are
// allowed between digits. A leading sign is accepted.
func ParseNum(s string, n *NumInfo) error {
	*n = NumInfo{src: s, buf: n.buf[:0], base: 10}

	if s != "" && (s[0] == '-' || s[0] == '+') {
		n.neg = s[0] == '-'
		if n.neg {
			n.buf = append(n.buf, '-')
		}
		s = s[1:]
	}
	if s == "" {
		return n.errf("empty number literal")
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			n.base = 16
		case 'o', 'O':
			n.base = 8
		case 'b', 'B':
			n.base = 2
		}
		if n.base != 10 {
			s = s[2:]
			if s == "" {
				return n.errf("invalid number %q: missing digits", n.src)
			}
			for i := 0; i < len(s); i++ {
				c := s[i]
				switch {
				case c == '_':
					if i == 0 || i == len(s)-1 || s[i-1] == '_' {
						return n.errf("invalid separator in %q", n.src)
					}
					continue
				case digitVal(c) >= int(n.base):
					return n.errf("invalid digit %q in %q", c, n.src)
				}
				n.buf = append(n.buf, c)
			}
			return nil
		}
	}

	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digits = true
			n.buf = append(n.buf, c)
		case c == '_':
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return n.errf("invalid separator in %q", n.src)
			}
		case c == '.':
			if n.isFloat {
				return n.errf("invalid number %q", n.src)
			}
			n.isFloat = true
			n.buf = append(n.buf, c)
		case c == 'e' || c == 'E':
			if !digits {
				return n.errf("invalid number %q", n.src)
			}
			n.isFloat = true
			n.buf = append(n.buf, 'e')
			rest := s[i+1:]
			if rest != "" && (rest[0] == '+' || rest[0] == '-') {
				n.buf = append(n.buf, rest[0])
				rest = rest[1:]
			}
			if rest == "" || strings.Trim(rest, "0123456789") != "" {
				return n.errf("invalid exponent in %q", n.src)
			}
			n.buf = append(n.buf, rest...)
			return nil
		default:
			return n.errf("invalid character %q in %q", c, n.src)
		}
	}
	if !digits {
		return n.errf("invalid number %q", n.src)
	}
	return nil
}

func (p *NumInfo) errf(format string, args ...any) error {
	return errors.Newf(token.NoPos, format, args...)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return 16 // larger than any legal digit val
}

// FormatFloat returns the shortest JavaScript source text for f, following
// the rules of Number.prototype.toString. Negative values are returned with
// a leading minus sign. Non-finite values are rendered as NaN, Infinity, and
// -Infinity.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}

	// Split the shortest representation d.ddde±xx into its digits and
	// the decimal exponent n such that f = 0.digits × 10^n.
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	n := x + 1
	k := len(digits)

	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

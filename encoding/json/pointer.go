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

package json

import (
	"fmt"
	"strconv"
	"strings"

	"jsgen.dev/go/encoding/gocodec"
)

var (
	jsonPtrEsc   = strings.NewReplacer("~", "~0", "/", "~1")
	jsonPtrUnesc = strings.NewReplacer("~0", "~", "~1", "/")
)

// Pointer represents a JSON Pointer as defined by RFC 6901.
// It is a slash-separated list of tokens that reference a specific location
// within a JSON document.
type Pointer string

// PointerFromTokens returns a JSON Pointer formed from the unquoted tokens.
// Any slash (/) or tilde (~) characters will be escaped appropriately.
func PointerFromTokens(tokens ...string) Pointer {
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteByte('/')
		buf.WriteString(jsonPtrEsc.Replace(tok))
	}
	return Pointer(buf.String())
}

// Tokens returns the unquoted path elements (tokens) of the JSON Pointer.
func (p Pointer) Tokens() []string {
	s := string(p)
	needUnesc := strings.IndexByte(s, '~') >= 0
	var a []string
	for len(s) > 0 {
		s = strings.TrimPrefix(s, "/")
		i := min(uint(strings.IndexByte(s, '/')), uint(len(s)))
		tok := s[:i]
		if needUnesc {
			tok = jsonPtrUnesc.Replace(tok)
		}
		a = append(a, tok)
		s = s[i:]
	}
	return a
}

// Lookup returns the value p refers to within v, which holds decoded
// values as returned by [Decode]. The empty pointer refers to v itself.
func (p Pointer) Lookup(v any) (any, error) {
	if p != "" && !strings.HasPrefix(string(p), "/") {
		return nil, fmt.Errorf("invalid JSON pointer %q: must start with /", p)
	}
	for i, tok := range p.Tokens() {
		switch x := v.(type) {
		case *gocodec.Object:
			f, ok := x.Get(tok)
			if !ok {
				return nil, fmt.Errorf("%s: field %q not found", PointerFromTokens(p.Tokens()[:i]...), tok)
			}
			v = f

		case []any:
			n, ok := index(tok)
			if !ok || n >= len(x) {
				return nil, fmt.Errorf("%s: invalid index %q for array of length %d", PointerFromTokens(p.Tokens()[:i]...), tok, len(x))
			}
			v = x[n]

		default:
			return nil, fmt.Errorf("%s: cannot index %T with %q", PointerFromTokens(p.Tokens()[:i]...), v, tok)
		}
	}
	return v, nil
}

// index parses an array index token, which must be 0 or a decimal number
// without leading zeros.
func index(tok string) (int, bool) {
	if tok == "" || tok[0] < '0' || tok[0] > '9' || len(tok) > 1 && tok[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	return n, err == nil
}

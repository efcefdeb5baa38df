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

package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"jsgen.dev/go/js/token"
)

func TestPrintError(t *testing.T) {
	f := token.NewFile("dir/a.js", 40)
	f.AddLine(10)
	pos := f.Pos(12, token.Blank)

	tests := []struct {
		name  string
		err   error
		cfg   *Config
		wantW string
	}{{
		name:  "SimplePromoted",
		err:   Promote(fmt.Errorf("hello"), "msg"),
		wantW: "msg: hello\n",
	}, {
		name:  "PromoteWithPercent",
		err:   Promote(fmt.Errorf("hello"), "msg%s"),
		wantW: "msg%s: hello\n",
	}, {
		name:  "PromoteWithEmptyString",
		err:   Promote(fmt.Errorf("hello"), ""),
		wantW: "hello\n",
	}, {
		name:  "TwoErrors",
		err:   Append(Promote(fmt.Errorf("hello"), "x"), Promote(fmt.Errorf("goodbye"), "y")),
		wantW: "x: hello\ny: goodbye\n",
	}, {
		name:  "WrappedSingle",
		err:   fmt.Errorf("wrap: %w", Promote(fmt.Errorf("hello"), "x")),
		wantW: "x: hello\n",
	}, {
		name:  "Positioned",
		err:   Newf(pos, "unexpected %s", "'}'"),
		wantW: "unexpected '}':\n    dir/a.js:2:3\n",
	}, {
		name:  "RelativeToCwd",
		err:   Newf(pos, "bad"),
		cfg:   &Config{Cwd: "dir"},
		wantW: "bad:\n    a.js:2:3\n",
	}, {
		name:  "DuplicatesRemoved",
		err:   Append(Newf(pos, "first"), Newf(pos, "second")),
		wantW: "first:\n    dir/a.js:2:3\n",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			Print(w, tt.err, tt.cfg)
			qt.Assert(t, qt.Equals(w.String(), tt.wantW))
		})
	}
}

func TestList(t *testing.T) {
	f := token.NewFile("a.js", 40)
	f.AddLine(10)
	p1 := f.Pos(3, token.NoSpace)
	p2 := f.Pos(15, token.NoSpace)

	var err Error
	err = Append(err, Newf(p2, "later"))
	err = Append(err, Newf(p1, "earlier"))

	qt.Assert(t, qt.Equals(err.Error(), "later (and 1 more errors)"))

	errs := Errors(Sanitize(err))
	qt.Assert(t, qt.HasLen(errs, 2))
	qt.Assert(t, qt.Equals(errs[0].Error(), "earlier"))
	qt.Assert(t, qt.Equals(errs[1].Position(), p2))

	pos := Positions(err)
	qt.Assert(t, qt.HasLen(pos, 1))
	qt.Assert(t, qt.Equals(pos[0], p2))
}

func TestWrap(t *testing.T) {
	base := New("base")
	err := Wrapf(base, token.NoPos, "context")
	qt.Assert(t, qt.IsTrue(Is(err, base)))
	qt.Assert(t, qt.Equals(err.Error(), "context: base"))

	var e Error
	qt.Assert(t, qt.IsTrue(As(fmt.Errorf("outer: %w", err), &e)))
	qt.Assert(t, qt.Equals(e, err))
}

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

package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPosition(t *testing.T) {
	f := NewFile("x.js", 30)
	f.AddLine(5)
	f.AddLine(12)
	f.AddLine(12) // ignored: not increasing
	f.AddLine(40) // ignored: beyond size
	qt.Assert(t, qt.Equals(f.LineCount(), 3))

	p := f.Pos(14, Newline)
	qt.Assert(t, qt.Equals(p.Line(), 3))
	qt.Assert(t, qt.Equals(p.Column(), 3))
	qt.Assert(t, qt.Equals(p.Offset(), 14))
	qt.Assert(t, qt.Equals(p.String(), "x.js:3:3"))
	qt.Assert(t, qt.Equals(p.RelPos(), Newline))
	qt.Assert(t, qt.IsTrue(p.IsNewline()))

	q := p.WithRel(Blank)
	qt.Assert(t, qt.Equals(q.RelPos(), Blank))
	qt.Assert(t, qt.IsFalse(q.IsNewline()))
	qt.Assert(t, qt.Equals(q.Offset(), 14))

	qt.Assert(t, qt.Equals(p.Add(2).Column(), 5))

	start := f.Pos(0, NoRelPos)
	qt.Assert(t, qt.IsTrue(start.IsValid()))
	qt.Assert(t, qt.Equals(start.String(), "x.js:1:1"))
}

func TestNoPos(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.Equals(NoPos.String(), "-"))
	qt.Assert(t, qt.Equals(NoPos.Offset(), 0))
	qt.Assert(t, qt.IsNil(NoPos.File()))
	qt.Assert(t, qt.Equals(NoPos.Filename(), ""))
}

func TestCompare(t *testing.T) {
	a := NewFile("a.js", 10)
	b := NewFile("b.js", 10)

	qt.Assert(t, qt.Equals(a.Pos(1, 0).Compare(a.Pos(2, 0)), -1))
	qt.Assert(t, qt.Equals(a.Pos(2, 0).Compare(a.Pos(2, 0)), 0))
	qt.Assert(t, qt.Equals(b.Pos(1, 0).Compare(a.Pos(5, 0)), 1))
	qt.Assert(t, qt.Equals(NoPos.Compare(a.Pos(1, 0)), 1))
	qt.Assert(t, qt.Equals(a.Pos(1, 0).Compare(NoPos), -1))
}

func TestPositionString(t *testing.T) {
	testCases := []struct {
		pos  Position
		want string
	}{
		{Position{}, "-"},
		{Position{Filename: "f.js"}, "f.js"},
		{Position{Line: 2, Column: 4}, "2:4"},
		{Position{Filename: "f.js", Line: 2, Column: 4}, "f.js:2:4"},
	}
	for _, tc := range testCases {
		qt.Check(t, qt.Equals(tc.pos.String(), tc.want))
	}
}

func TestLineStart(t *testing.T) {
	src := []byte("a\nbc\n\nd")
	f := NewFile("x.js", len(src))
	f.SetLinesForContent(src)
	qt.Assert(t, qt.Equals(f.LineCount(), 4))

	for line, offset := range []int{0, 2, 5, 6} {
		p := f.LineStart(line + 1)
		qt.Assert(t, qt.Equals(p.Offset(), offset))
		qt.Assert(t, qt.Equals(p.Line(), line+1))
		qt.Assert(t, qt.Equals(p.Column(), 1))
	}
	qt.Assert(t, qt.PanicMatches(func() { f.LineStart(5) }, `invalid line number 5 .*`))
}

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
	"cmp"
	"fmt"
	"sort"
)

// Position describes an arbitrary source position within a file, including
// offset, line, and column location.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position. It carries both a printable
// file position, obtained with [Pos.Position], and the spacing relative to
// the previous token, obtained with [Pos.RelPos].
type Pos struct {
	file   *File
	offset int
}

// NoPos is the zero value for [Pos]; there is no file and line information
// associated with it, and [Pos.IsValid] is false.
var NoPos = Pos{}

// RelPos indicates the relative position of token to the previous token.
type RelPos int

const (
	// NoRelPos indicates no relative position is specified.
	NoRelPos RelPos = iota

	// NoSpace indicates there is no whitespace before this token.
	NoSpace

	// Blank means there is horizontal space before this token.
	Blank

	// Newline means there is at least one newline before this token.
	Newline

	relMask  = 0xf
	relShift = 4
)

var relNames = []string{"norel", "nospace", "blank", "newline"}

func (p RelPos) String() string {
	if int(p) < len(relNames) {
		return relNames[p]
	}
	return fmt.Sprintf("RelPos(%d)", int(p))
}

// File returns the file that contains the position p or nil if there is no
// such file.
func (p Pos) File() *File {
	if p.index() == 0 {
		return nil
	}
	return p.file
}

// Filename returns the name of the file that this position belongs to.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Line returns the position's line number, starting at 1.
func (p Pos) Line() int { return p.Position().Line }

// Column returns the position's column number counting in bytes,
// starting at 1.
func (p Pos) Column() int { return p.Position().Column }

// Offset reports the byte offset relative to the file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.file.Offset(p)
}

// Position unpacks the position information into a flat struct.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

// String returns a human-readable form of a printable position.
func (p Pos) String() string { return p.Position().String() }

// Compare returns an integer comparing two positions. NoPos is larger than
// any valid position.
func (p Pos) Compare(p2 Pos) int {
	switch {
	case p == p2:
		return 0
	case p == NoPos:
		return +1
	case p2 == NoPos:
		return -1
	}
	if c := cmp.Compare(p.Filename(), p2.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), p2.Offset())
}

// Add creates a new position relative to the p offset by n.
func (p Pos) Add(n int) Pos {
	return Pos{p.file, p.offset + toPos(index(n))}
}

// IsValid reports whether the position contains any useful information.
func (p Pos) IsValid() bool { return p != NoPos }

// IsNewline reports whether the relative information suggests this node
// started on a new line.
func (p Pos) IsNewline() bool { return p.RelPos() >= Newline }

// WithRel returns p with its relative position replaced by rel.
func (p Pos) WithRel(rel RelPos) Pos {
	return Pos{p.file, p.offset&^relMask | int(rel)}
}

// RelPos reports the spacing before the token at p.
func (p Pos) RelPos() RelPos { return RelPos(p.offset & relMask) }

func (p Pos) index() index { return index(p.offset) >> relShift }

func toPos(x index) int { return int(x) << relShift }

// index represents an offset into the file. It is 1-based so that the zero
// Pos can be distinguished from a Pos at offset zero.
type index int

// A File has a name, size, and line offset table.
type File struct {
	name  string
	size  index
	lines []index // offset of the first character of each line; lines[0] == 0
}

// NewFile returns a new file with the given name and size.
func NewFile(filename string, size int) *File {
	return &File{
		name:  filename,
		size:  index(size),
		lines: []index{0},
	}
}

// Name returns the file name of file f.
func (f *File) Name() string { return f.name }

// Size returns the size of file f.
func (f *File) Size() int { return int(f.size) }

// LineCount returns the number of lines in file f.
func (f *File) LineCount() int { return len(f.lines) }

// AddLine adds the line offset for a new line. The line offset must be
// larger than the offset for the previous line and smaller than the file
// size; otherwise the line offset is ignored.
func (f *File) AddLine(offset int) {
	x := index(offset)
	if i := len(f.lines); (i == 0 || f.lines[i-1] < x) && x < f.size {
		f.lines = append(f.lines, x)
	}
}

// SetLinesForContent sets the line offsets for the given file content.
func (f *File) SetLinesForContent(content []byte) {
	for i, c := range content {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}
}

// LineStart returns the position of the first character in the given line,
// starting at 1. It panics if the line is out of range.
func (f *File) LineStart(line int) Pos {
	if line < 1 || line > len(f.lines) {
		panic(fmt.Sprintf("invalid line number %d (should be between 1 and %d)", line, len(f.lines)))
	}
	return f.Pos(int(f.lines[line-1]), NoRelPos)
}

// Pos returns the Pos value for the given file offset and relative position.
func (f *File) Pos(offset int, rel RelPos) Pos {
	if index(offset) > f.size {
		panic("illegal file offset")
	}
	return Pos{f, toPos(1+index(offset)) + int(rel)}
}

// Offset returns the offset for the given file position p.
func (f *File) Offset(p Pos) int {
	x := p.index()
	if x < 1 || x > 1+f.size {
		panic("illegal Pos value")
	}
	return int(x - 1)
}

// Line returns the line number for the given file position p.
func (f *File) Line(p Pos) int { return f.Position(p).Line }

// Position returns the Position value for the given file position p.
func (f *File) Position(p Pos) (pos Position) {
	if p == NoPos {
		return pos
	}
	x := p.index() - 1
	pos.Filename = f.name
	pos.Offset = int(x)
	if i := searchInts(f.lines, x); i >= 0 {
		pos.Line, pos.Column = i+1, int(x-f.lines[i])+1
	}
	return pos
}

func searchInts(a []index, x index) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > x }) - 1
}

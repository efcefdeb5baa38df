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

// Package jstxtar runs golden-file tests stored in txtar archives.
//
// Each archive holds its inputs next to the expected outputs. Output
// written by a test to the writer named n is compared with the archive
// file out/<test name>/n, or out/<test name> for the default writer.
// Setting JSGEN_UPDATE rewrites the archives instead.
package jstxtar

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/parser"
)

// UpdateGoldenFiles reports whether golden files are rewritten rather than
// compared.
var UpdateGoldenFiles = os.Getenv("JSGEN_UPDATE") != ""

// A TxTarTest runs a function for every .txtar archive below Root.
type TxTarTest struct {
	// Root is the directory searched for archives.
	Root string

	// Name selects the golden files: out/<Name> and out/<Name>/*.
	Name string

	// Update rewrites golden files that differ from the output.
	Update bool

	// Skip maps test names to the reason they are skipped.
	Skip map[string]string
}

// A Test is the state of a single archive. It embeds *testing.T for
// reporting and implements io.Writer for the default output.
type Test struct {
	*testing.T

	Archive *txtar.Archive

	// Dir is the absolute directory of the archive.
	Dir string

	prefix  string
	outputs []*output
}

type output struct {
	name string
	buf  bytes.Buffer
}

func (t *Test) Write(b []byte) (int, error) {
	return t.Writer("").Write(b)
}

// Writer returns the writer for the output with the given name. The empty
// name denotes the default output.
func (t *Test) Writer(name string) io.Writer {
	full := t.prefix
	if name != "" {
		full = path.Join(t.prefix, name)
	}
	for _, o := range t.outputs {
		if o.name == full {
			return &o.buf
		}
	}
	o := &output{name: full}
	t.outputs = append(t.outputs, o)
	return &o.buf
}

// comment calls fn for each line of the archive comment until it returns
// false.
func (t *Test) comment(fn func(line []byte) bool) {
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() && fn(bytes.TrimSpace(s.Bytes())) {
	}
}

// HasTag reports whether the archive comment has a line #key.
func (t *Test) HasTag(key string) (found bool) {
	t.comment(func(line []byte) bool {
		found = string(line) == "#"+key
		return !found
	})
	return found
}

// Value returns the value of a line "#key: value" in the archive comment.
func (t *Test) Value(key string) (value string, ok bool) {
	prefix := "#" + key + ":"
	t.comment(func(line []byte) bool {
		s, found := strings.CutPrefix(string(line), prefix)
		if found {
			value, ok = strings.TrimSpace(s), true
		}
		return !found
	})
	return value, ok
}

// File returns the contents of the named archive file.
func (t *Test) File(name string) ([]byte, bool) {
	for _, f := range t.Archive.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// Parse parses the named archive file as JavaScript. The test fails if the
// file does not exist or cannot be parsed.
func (t *Test) Parse(name string) *ast.File {
	t.Helper()
	data, ok := t.File(name)
	if !ok {
		t.Fatalf("archive has no file %q", name)
	}
	f, err := parser.ParseFile(name, data)
	if err != nil {
		t.Fatal(errors.Details(err, &errors.Config{Cwd: t.Dir, ToSlash: true}))
	}
	return f
}

// Run calls f for each archive in x.Root and checks the outputs written
// by f against the golden files of the archive.
func (x *TxTarTest) Run(t *testing.T, f func(tc *Test)) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	var files []string
	err = filepath.WalkDir(x.Root, func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Ext(p) == ".txtar" {
			files = append(files, p)
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		slashed := filepath.ToSlash(file)
		_, name, _ := strings.Cut(slashed, "testdata/")
		name = strings.TrimSuffix(name, ".txtar")

		t.Run(name, func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("error parsing txtar file: %v", err)
			}
			tc := &Test{
				T:       t,
				Archive: a,
				Dir:     filepath.Dir(filepath.Join(cwd, file)),
				prefix:  path.Join("out", x.Name),
			}
			if tc.HasTag("skip") {
				t.Skip()
			}
			if msg, ok := x.Skip[name]; ok {
				t.Skip(msg)
			}

			f(tc)

			if x.check(tc) {
				if err := os.WriteFile(file, txtar.Format(a), 0o644); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

// check compares the outputs of tc with the archive and reports whether
// the archive was modified.
func (x *TxTarTest) check(tc *Test) (modified bool) {
	a := tc.Archive
	for _, o := range tc.outputs {
		got := o.buf.Bytes()

		k := -1
		for j, f := range a.Files {
			if f.Name == o.name {
				k = j
			}
		}
		if k >= 0 && bytes.Equal(a.Files[k].Data, got) {
			continue
		}
		if !x.Update && !UpdateGoldenFiles {
			var want []byte
			if k >= 0 {
				want = a.Files[k].Data
			}
			tc.Errorf("result for %s differs: (-want +got)\n%s",
				o.name, cmp.Diff(string(want), string(got)))
			continue
		}
		if k < 0 {
			a.Files = append(a.Files, txtar.File{Name: o.name})
			k = len(a.Files) - 1
		}
		a.Files[k].Data = slices.Clone(got)
		modified = true
	}
	return modified
}

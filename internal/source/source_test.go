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

package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "x.json")
	qt.Assert(t, qt.IsNil(os.WriteFile(name, []byte(`[1]`), 0o666)))

	testCases := []struct {
		name string
		src  any
		want string
	}{
		{name: "string", src: "a", want: "a"},
		{name: "bytes", src: []byte("b"), want: "b"},
		{name: "buffer", src: bytes.NewBufferString("c"), want: "c"},
		{name: "reader", src: strings.NewReader("d"), want: "d"},
		{name: name, want: "[1]"},
	}
	for _, tc := range testCases {
		t.Run(filepath.Base(tc.name), func(t *testing.T) {
			b, err := ReadAll(tc.name, tc.src)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(b), tc.want))
		})
	}

	_, err := ReadAll("x", 42)
	qt.Assert(t, qt.ErrorMatches(err, "invalid source type int"))
}

func TestKind(t *testing.T) {
	qt.Check(t, qt.Equals(Kind("a.JSON"), "json"))
	qt.Check(t, qt.Equals(Kind("a.yml"), "yaml"))
	qt.Check(t, qt.Equals(Kind("a.yaml"), "yaml"))
	qt.Check(t, qt.Equals(Kind("a.js"), "js"))
	qt.Check(t, qt.Equals(Kind("a.txt"), ""))
	qt.Check(t, qt.Equals(Kind("-"), ""))
}

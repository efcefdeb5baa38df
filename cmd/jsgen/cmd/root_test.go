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

package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestHelp(t *testing.T) {
	run := func(args ...string) error {
		cmd, err := New(args)
		if err != nil {
			return err
		}
		cmd.SetOutput(io.Discard)
		return cmd.Run(context.Background())
	}
	for _, args := range [][]string{
		{"help"},
		{"--help"},
		{"-h"},
		{"help", "gen"},
		{"gen", "--help"},
		{"help", "environment"},
	} {
		qt.Check(t, qt.IsNil(run(args...)), qt.Commentf("args: %q", args))
	}
}

func TestRunInProcess(t *testing.T) {
	cmd, err := New([]string{"gen", "--expr", "-c"})
	qt.Assert(t, qt.IsNil(err))

	var out bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetInput(strings.NewReader(`{"b": [1, 2], "a": null}`))
	qt.Assert(t, qt.IsNil(cmd.Run(context.Background())))
	qt.Assert(t, qt.Equals(out.String(), "({a:null,b:[1,2]});\n"))
}

func TestRunError(t *testing.T) {
	cmd, err := New([]string{"fold", "1+"})
	qt.Assert(t, qt.IsNil(err))

	var out bytes.Buffer
	cmd.SetOutput(&out)
	err = cmd.Run(context.Background())
	qt.Assert(t, qt.Equals(err, ErrPrintedError))
	qt.Assert(t, qt.StringContains(out.String(), "expected"))
}

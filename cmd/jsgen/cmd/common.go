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
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"jsgen.dev/go/internal/jsdebug"
	"jsgen.dev/go/internal/source"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/token"
	"jsgen.dev/go/tools/dedup"
)

var inTest = false

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}

	// Link x/text as our localizer.
	p := message.NewPrinter(getLang())
	format := func(w io.Writer, format string, args ...any) {
		p.Fprintf(w, format, args...)
	}

	cwd, _ := os.Getwd()

	w := &bytes.Buffer{}
	errors.Print(w, err, &errors.Config{
		Format:  format,
		Cwd:     cwd,
		ToSlash: inTest,
	})

	b := w.Bytes()
	_, _ = cmd.Stderr().Write(b)
	if fatal {
		exit()
	}
}

// Logger returns the logger for debug output. It discards all records
// unless --verbose or JSGEN_DEBUG=log is set.
func (c *Command) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	var h slog.Handler
	if flagVerbose.Bool(c) || jsdebug.Flags.Log {
		h = slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// Timestamps make the output unstable in tests.
				if inTest && a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		})
	} else {
		h = slog.NewTextHandler(io.Discard, nil)
	}
	c.logger = slog.New(h)
	return c.logger
}

// inputFile returns the name of the input file given in args, or
// source.Stdin if there is none.
func inputFile(cmd *Command, args []string) string {
	switch len(args) {
	case 0:
		return source.Stdin
	case 1:
		return args[0]
	}
	exitOnErr(cmd, errors.Newf(token.NoPos, "too many arguments: %d; expected at most one input file", len(args)), true)
	return ""
}

// readInput reads the named file, or standard input for source.Stdin.
func readInput(cmd *Command, filename string) []byte {
	var src any
	if filename == source.Stdin {
		src = cmd.InOrStdin()
	}
	b, err := source.ReadAll(filename, src)
	if err != nil {
		exitOnErr(cmd, errors.Wrapf(err, token.NoPos, "cannot read input"), true)
	}
	return b
}

func formatOptions(cmd *Command) []format.Option {
	if !flagBeautify.Bool(cmd) {
		return nil
	}
	return []format.Option{format.Beautify(), format.IndentWidth(flagIndent.Int(cmd))}
}

// writeOutput writes b followed by a newline to the --out file or
// standard output.
func writeOutput(cmd *Command, b []byte) {
	b = append(b, '\n')
	out := flagOut.String(cmd)
	if out == "" || out == source.Stdin {
		_, err := cmd.OutOrStdout().Write(b)
		exitOnErr(cmd, err, true)
		return
	}
	if err := os.WriteFile(out, b, 0o666); err != nil {
		exitOnErr(cmd, errors.Wrapf(err, token.NoPos, "cannot write output"), true)
	}
	cmd.Logger().Debug("wrote output", "file", out, "bytes", len(b))
}

func dedupOptions(cmd *Command) []dedup.Option {
	opts := []dedup.Option{
		dedup.MinLength(flagMinLength.Int(cmd)),
		dedup.MinSaving(flagMinSaving.Int(cmd)),
		dedup.Target(flagTarget.String(cmd)),
		dedup.Logger(cmd.Logger()),
	}
	if p := flagPrefix.String(cmd); p != "" {
		opts = append(opts, dedup.Prefix(p))
	}
	if flagLongestFirst.Bool(cmd) {
		opts = append(opts, dedup.LongestFirst())
	}
	return opts
}

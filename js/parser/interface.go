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

// Package parser implements a parser for the JavaScript subset handled by
// jsgen. Input may be provided in a variety of forms (see the various
// Parse* functions); the output is an abstract syntax tree (AST)
// representing the source. The parser is invoked through one of the Parse*
// functions.
package parser

import (
	"jsgen.dev/go/internal/source"
	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/token"
)

// Option specifies a parse option.
type Option interface {
	apply(cfg *Config)
}

var _ Option = Config{}

// Config represents the end result of applying a set of options.
// The zero value is not OK to use: use [NewConfig] to construct
// a Config value before using it.
//
// Config itself implements [Option] by overwriting the
// entire configuration.
type Config struct {
	// valid is set by NewConfig and is used to check
	// that a Config has been created correctly.
	valid bool

	// Mode holds a bitmask of boolean parser options.
	Mode Mode
}

// apply implements [Option]
func (cfg Config) apply(cfg1 *Config) {
	if !cfg.valid {
		panic("zero parser.Config value used; use parser.NewConfig!")
	}
	*cfg1 = cfg
}

// NewConfig returns the configuration containing all default values
// with the given options applied.
func NewConfig(opts ...Option) Config {
	return Config{valid: true}.Apply(opts...)
}

// Apply applies all the given options to cfg and
// returns the resulting configuration.
func (cfg Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// IsValid reports whether cfg is valid; that
// is, it has been created with [NewConfig].
func (cfg Config) IsValid() bool {
	return cfg.valid
}

// A Mode value is a set of flags (or 0).
// It controls optional parser functionality.
//
// Mode implements [Option] by or-ing all its bits
// with [Config.Mode].
type Mode uint

const (
	// Trace causes parsing to print a trace of parsed productions.
	Trace Mode = 1 << iota

	// AllErrors causes all errors to be reported (not just the first 10 on
	// different lines).
	AllErrors

	// AllowPartial allows ParseExpr to succeed on a prefix of the input.
	AllowPartial
)

// apply implements [Option].
func (m Mode) apply(c *Config) {
	c.Mode |= m
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding File node. The source code may be provided via
// the filename of the source file, or via the src parameter.
//
// If src != nil, ParseFile parses the source from src and the filename is
// only used when recording position information. The type of the argument
// for the src parameter must be string, []byte, or io.Reader.
// If src == nil, ParseFile parses the file specified by filename.
//
// If the source couldn't be read, the returned AST is nil and the error
// indicates the specific failure. If the source was read but syntax
// errors were found, the result is a partial AST (with Bad* nodes
// representing the fragments of erroneous source code). Multiple errors
// are returned as a list sorted by file position.
func ParseFile(filename string, src any, opts ...Option) (f *ast.File, err error) {
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var pp parser
	defer func() {
		if pp.panicking {
			_ = recover()
		}
		if f == nil {
			f = &ast.File{Filename: filename}
		}
		err = toErr(errors.Sanitize(pp.errors))
	}()

	pp.init(filename, text, opts)
	f = pp.parseFile()
	f.Filename = filename
	return f, nil
}

// ParseExpr is a convenience function for parsing an expression.
// The arguments have the same meaning as for ParseFile, but the source must
// be a valid expression, optionally followed by a semicolon.
func ParseExpr(filename string, src any, opts ...Option) (x ast.Expr, err error) {
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var p parser
	defer func() {
		if p.panicking {
			_ = recover()
		}
		err = toErr(errors.Sanitize(p.errors))
		if err != nil {
			x = nil
		}
	}()

	p.init(filename, text, opts)
	x = p.parseExpr()

	if p.tok == token.SEMICOLON {
		p.next()
	}
	if p.cfg.Mode&AllowPartial == 0 {
		p.expect(token.EOF)
	}
	return x, nil
}

// toErr avoids returning a typed nil as an error.
func toErr(err errors.Error) error {
	if err == nil {
		return nil
	}
	return err
}

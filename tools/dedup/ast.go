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

package dedup

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"jsgen.dev/go/js/ast"
	"jsgen.dev/go/js/ast/astutil"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/format"
	"jsgen.dev/go/js/token"
)

// AST adapts js/ast syntax trees to the [Tree] interface. Nodes are
// compared by pointer identity and serialized with the compact printer.
type AST struct {
	// Tok is the keyword of the declaration that holds the bindings:
	// token.VAR, token.LET or token.CONST. The zero value means token.VAR.
	Tok token.Token
}

var _ Tree[ast.Node] = AST{}

func (AST) Kind(n ast.Node) Kind {
	switch n.(type) {
	case *ast.ArrayLit:
		return Array
	case *ast.ObjectLit:
		return Object
	}
	return Other
}

func (AST) Children(n ast.Node) []ast.Node { return ast.Children(n) }

func (AST) Text(n ast.Node) string { return format.String(n) }

func (AST) Replace(parent, old, new ast.Node) bool {
	return astutil.Replace(parent, old, new)
}

func (AST) Ref(name string) ast.Node { return ast.NewIdent(name) }

func (AST) Clone(n ast.Node) ast.Node { return astutil.Clone(n) }

// Declare prepends a single declaration of all bindings to root, which
// must be an *ast.File or *ast.BlockStmt.
func (a AST) Declare(root ast.Node, b []Binding[ast.Node]) {
	tok := a.Tok
	if tok == token.ILLEGAL {
		tok = token.VAR
	}
	decl := &ast.VarDecl{Tok: tok}
	for _, x := range b {
		decl.Specs = append(decl.Specs, &ast.VarSpec{
			Name:  ast.NewIdent(x.Name),
			Value: x.Value.(ast.Expr),
		})
	}
	switch x := root.(type) {
	case *ast.File:
		x.Stmts = append([]ast.Stmt{decl}, x.Stmts...)
	case *ast.BlockStmt:
		x.List = append([]ast.Stmt{decl}, x.List...)
	default:
		panic(fmt.Sprintf("dedup: cannot declare bindings in %T", root))
	}
}

// An Option configures PullCommonStructures.
type Option func(*options)

type options struct {
	Config
	target string
}

// Prefix sets the prefix of the names of the hoisted bindings. By default
// a random prefix starting with an underscore is used.
func Prefix(p string) Option {
	return func(o *options) { o.Prefix = p }
}

// LongestFirst makes the engine consider the longest candidates first.
// The default is to consider the shortest ones first.
func LongestFirst() Option {
	return func(o *options) { o.LongestFirst = true }
}

// MinLength sets the length the serialized form of an array or object must
// exceed for it to be considered.
func MinLength(n int) Option {
	return func(o *options) { o.MinLength = n }
}

// MinSaving sets the value that the number of occurrences times the
// serialized length must exceed for a group to be hoisted.
func MinSaving(n int) Option {
	return func(o *options) { o.MinSaving = n }
}

// Logger sets the logger that receives a debug record per group.
func Logger(l *slog.Logger) Option {
	return func(o *options) { o.Logger = l }
}

// Target sets the version of the JavaScript language the output is meant
// for, either an ECMAScript edition (5, 6) or a year (2015). Bindings are
// declared with const for editions from 6 on, and with var otherwise.
func Target(version string) Option {
	return func(o *options) { o.target = version }
}

var es6 = semver.MustParse("6.0.0")

// declToken returns the declaration keyword for the target version.
func declToken(target string) (token.Token, error) {
	if target == "" {
		return token.VAR, nil
	}
	v, err := semver.NewVersion(target)
	if err != nil {
		return token.ILLEGAL, errors.Wrapf(err, token.NoPos, "invalid target %q", target)
	}
	if v.LessThan(es6) {
		return token.VAR, nil
	}
	return token.CONST, nil
}

// randomPrefix returns "_" followed by 32 random bits in base 36.
func randomPrefix() string {
	u := uuid.New()
	return "_" + strconv.FormatUint(uint64(binary.BigEndian.Uint32(u[:4])), 36)
}

// PullCommonStructures hoists array and object literals that occur more
// than once in f into bindings declared at the top of f, and replaces each
// occurrence by a reference to its binding.
//
// It returns an error only for invalid options.
func PullCommonStructures(f *ast.File, opts ...Option) error {
	o := options{Config: Config{
		MinLength: DefaultMinLength,
		MinSaving: DefaultMinSaving,
	}}
	for _, fn := range opts {
		fn(&o)
	}
	tok, err := declToken(o.target)
	if err != nil {
		return err
	}
	if o.Prefix == "" {
		o.Prefix = randomPrefix()
	}
	Pull[ast.Node](AST{Tok: tok}, f, &o.Config)
	return nil
}

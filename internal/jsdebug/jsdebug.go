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

// Package jsdebug holds the JSGEN_DEBUG settings.
package jsdebug

import (
	"sync"

	"jsgen.dev/go/internal/envflag"
)

// Flags holds the set of global JSGEN_DEBUG flags. It is initialized by Init.
var Flags Config

// Config holds the set of known JSGEN_DEBUG flags.
//
// When adding, deleting, or modifying entries below,
// update cmd/jsgen/cmd/help.go as well for `jsgen help environment`.
type Config struct {
	// Log enables debug logging to standard error, as with --verbose.
	Log bool

	// MinLength is the default length that the printed form of an array
	// or object must exceed to be hoisted.
	MinLength int `envflag:"name:min_length,default:20"`

	// MinSaving is the default threshold for the number of occurrences
	// times the printed length of a group of hoisting candidates.
	MinSaving int `envflag:"name:min_saving,default:10"`

	// Prefix is the default prefix of hoisted variable names. It is
	// random when empty.
	Prefix string
}

// Init initializes Flags. It is not an init function so that the failure
// mode is an error rather than a panic, and so that commands which do not
// need the flags do not fail on a malformed variable.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return envflag.Init(&Flags, "JSGEN_DEBUG")
})

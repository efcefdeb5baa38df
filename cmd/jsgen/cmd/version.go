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
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"

	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/token"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print jsgen version",
		Long:  ``,
		RunE:  mkRunE(c, runVersion),
	}
	return cmd
}

const defaultVersion = "(devel)"

// version may be set by a builder using
// -ldflags='-X jsgen.dev/go/cmd/jsgen/cmd.version=<version>'.
var version = defaultVersion

func runVersion(cmd *Command, args []string) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		// shouldn't happen
		return errors.New("unknown error reading build-info")
	}
	if cfg := os.Getenv("JSGEN_VERSION_TEST_CFG"); cfg != "" {
		var extra []debug.BuildSetting
		if err := json.Unmarshal([]byte(cfg), &extra); err != nil {
			return errors.Wrapf(err, token.NoPos, "invalid JSGEN_VERSION_TEST_CFG")
		}
		bi.Settings = append(bi.Settings, extra...)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "jsgen version %s\n\n", moduleVersion(bi))
	fmt.Fprintf(w, "go version %s\n", runtime.Version())
	for _, s := range bi.Settings {
		if s.Value != "" {
			// Right-align keys; the longest common one is vcs.revision.
			fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
		}
	}
	return nil
}

// moduleVersion returns the version set at link time, the version of the
// main module, or a pseudo-version derived from the VCS settings of bi, in
// that order of preference.
func moduleVersion(bi *debug.BuildInfo) string {
	switch {
	case version != defaultVersion:
		return version
	case bi.Main.Version != "" && bi.Main.Version != defaultVersion:
		return bi.Main.Version
	}

	var rev string
	var t time.Time
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			// The 12-character prefix matches what cmd/go uses.
			rev = s.Value[:min(len(s.Value), 12)]
		case "vcs.time":
			t, _ = time.Parse(time.RFC3339Nano, s.Value)
		}
	}
	if rev == "" {
		return defaultVersion
	}
	return module.PseudoVersion("", "", t, rev)
}

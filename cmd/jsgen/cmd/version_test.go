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
	"runtime/debug"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestModuleVersion(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
	}
	testCases := []struct {
		name string
		bi   debug.BuildInfo
		want string
	}{{
		name: "NoInfo",
		want: "(devel)",
	}, {
		name: "Module",
		bi:   debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}, Settings: vcs},
		want: "v1.2.3",
	}, {
		name: "PseudoVersion",
		bi:   debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: vcs},
		want: "v0.0.0-20260304050607-0123456789ab",
	}, {
		name: "ShortRevision",
		bi:   debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}},
		want: "v0.0.0-00010101000000-abc",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(moduleVersion(&tc.bi), tc.want))
		})
	}
}

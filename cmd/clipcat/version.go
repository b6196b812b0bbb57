// Copyright 2025 walteh LLC
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

package main

import (
	"fmt"
	"runtime"
	rtdebug "runtime/debug"
	"strings"
)

// 📇 buildVersion is the subset of build metadata clipcat reports: the
// module version plus whatever VCS stamps the toolchain recorded.
type buildVersion struct {
	Version  string
	Revision string
	BuiltAt  string
	Dirty    bool
}

// 🔍 resolveBuildVersion reads debug.ReadBuildInfo, falling back to "dev"
// for binaries built outside a module (go run, test binaries).
func resolveBuildVersion() buildVersion {
	v := buildVersion{Version: "dev"}

	info, ok := rtdebug.ReadBuildInfo()
	if !ok {
		return v
	}
	if info.Main.Version != "" {
		v.Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value
		case "vcs.time":
			v.BuiltAt = setting.Value
		case "vcs.modified":
			v.Dirty = setting.Value == "true"
		}
	}

	return v
}

// 📝 FormatVersion renders the version line plus optional VCS detail lines
func FormatVersion() string {
	v := resolveBuildVersion()

	var b strings.Builder
	fmt.Fprintf(&b, "clipcat %s (%s %s/%s)\n", v.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if v.Revision != "" {
		rev := v.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if v.Dirty {
			rev += " (modified)"
		}
		fmt.Fprintf(&b, "revision: %s\n", rev)
	}
	if v.BuiltAt != "" {
		fmt.Fprintf(&b, "built:    %s\n", v.BuiltAt)
	}

	return b.String()
}

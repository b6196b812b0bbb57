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

// Package gitdiff shells out to the git executable to detect repositories
// and capture diff output with the pager disabled.
package gitdiff

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 IsRepository reports whether dir is inside a git work tree
func IsRepository(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir

	if err := cmd.Run(); err != nil {
		zerolog.Ctx(ctx).Debug().Str("dir", dir).Err(err).Msg("not a git repository")
		return false
	}
	return true
}

// 📥 Capture runs `git --no-pager diff` in dir and returns stdout verbatim,
// including when the diff is empty. With staged set, only changes already
// added to the index are diffed (`--cached`).
func Capture(ctx context.Context, dir string, staged bool) (string, error) {
	args := []string{"--no-pager", "diff"}
	if staged {
		args = append(args, "--cached")
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	zerolog.Ctx(ctx).Debug().Strs("args", args).Str("dir", dir).Msg("running git")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", errors.Errorf("running git diff: %w: %s", err, msg)
		}
		return "", errors.Errorf("running git diff: %w", err)
	}

	return stdout.String(), nil
}

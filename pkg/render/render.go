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

// Package render assembles the concatenated document that gets copied to
// the clipboard: one "<path>:\n<content>" block per file, blank-line
// separated, with unreadable files rendered as inline error markers.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// 📝 Document reads every relative path under baseDir and renders the
// combined output. Paths are sorted byte-wise before rendering. A file that
// cannot be read as UTF-8 text yields an inline error block instead of
// aborting, so the block count always equals len(relPaths).
func Document(ctx context.Context, baseDir string, relPaths []string) string {
	sorted := make([]string, len(relPaths))
	copy(sorted, relPaths)
	sort.Strings(sorted)

	blocks := make([]string, 0, len(sorted))
	for _, rel := range sorted {
		blocks = append(blocks, renderFile(ctx, baseDir, rel))
	}

	return strings.Join(blocks, "\n\n")
}

// 📄 renderFile renders a single file block or its inline error marker
func renderFile(ctx context.Context, baseDir, rel string) string {
	content, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(rel)))
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("path", rel).Err(err).Msg("error reading file")
		return fmt.Sprintf("%s: [Error reading file: %v]", rel, err)
	}

	if !utf8.Valid(content) {
		zerolog.Ctx(ctx).Debug().Str("path", rel).Msg("file is not valid UTF-8 text")
		return fmt.Sprintf("%s: [Error reading file: file is not valid UTF-8 text]", rel)
	}

	return fmt.Sprintf("%s:\n%s", rel, content)
}

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

// Package collect walks a directory tree and returns the relative paths of
// regular files accepted by a filter predicate.
package collect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/clipcat/pkg/filter"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a collection run
type Options struct {
	// Recursive enables descending into subdirectories. When false only
	// the base directory's immediate entries are considered.
	Recursive bool
	// Filter is the path acceptance predicate. Nil accepts everything.
	Filter *filter.Filter
}

// 🚶 Files walks baseDir and returns the lexically sorted, slash-separated
// relative paths of every regular file the filter accepts. Unreadable
// subdirectories are skipped, never fatal.
func Files(ctx context.Context, baseDir string, opts Options) ([]string, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, errors.Errorf("accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("path is not a directory: %s", baseDir)
	}

	matched := []string{}

	err = filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Keep walking; a vanished or unreadable entry is not fatal.
			zerolog.Ctx(ctx).Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}

		if path == baseDir {
			return nil
		}

		if d.IsDir() {
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return errors.Errorf("computing relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if opts.Filter != nil && !opts.Filter.Accept(ctx, rel) {
			return nil
		}

		matched = append(matched, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking directory: %w", err)
	}

	sort.Strings(matched)

	zerolog.Ctx(ctx).Debug().Str("dir", baseDir).Int("matched", len(matched)).Msg("collected files")
	return matched, nil
}

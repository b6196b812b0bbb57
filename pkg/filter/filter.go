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

package filter

import (
	"context"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a Filter
type Options struct {
	// Includes are glob patterns matched against the file basename.
	// Empty means every basename passes.
	Includes []string
	// Excludes are glob patterns matched against the slash-separated
	// relative path, or plain directory names (no wildcard, no separator)
	// which exclude everything beneath them.
	Excludes []string
	// Extensions are file extensions matched as basename suffixes.
	// A missing leading dot is added ("py" and ".py" are equivalent).
	Extensions []string
}

// 🔍 Filter is the path acceptance predicate shared by all collection modes
type Filter struct {
	includes   []string
	excludes   []string
	extensions []string
}

// 🏭 New creates a Filter, validating every glob pattern up front
func New(opts Options) (*Filter, error) {
	for _, pattern := range opts.Includes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid include pattern: %s", pattern)
		}
	}
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	f := &Filter{
		includes: opts.Includes,
		excludes: opts.Excludes,
	}
	for _, ext := range opts.Extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions = append(f.extensions, ext)
	}

	return f, nil
}

// 🎯 Accept reports whether the slash-separated relative path passes the
// filter. Includes and extensions are checked against the basename first,
// then excludes against the full relative path.
func (f *Filter) Accept(ctx context.Context, relPath string) bool {
	base := path.Base(relPath)

	if !f.included(ctx, base) {
		return false
	}

	return !f.excluded(ctx, relPath)
}

// 📥 included checks basename-level include globs and extension suffixes.
// With neither configured, every basename passes.
func (f *Filter) included(ctx context.Context, base string) bool {
	if len(f.includes) == 0 && len(f.extensions) == 0 {
		return true
	}

	for _, pattern := range f.includes {
		matched, err := doublestar.Match(pattern, base)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("base", base).Err(err).Msg("error matching include pattern")
			continue
		}
		if matched {
			return true
		}
	}

	for _, ext := range f.extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}

	return false
}

// 📤 excluded checks path-level exclude globs and directory-name prefixes
func (f *Filter) excluded(ctx context.Context, relPath string) bool {
	for _, pattern := range f.excludes {
		if name, ok := plainName(pattern); ok {
			if relPath == name || strings.HasPrefix(relPath, name+"/") {
				zerolog.Ctx(ctx).Debug().Str("path", relPath).Str("pattern", pattern).Msg("path excluded by directory name")
				return true
			}
			continue
		}

		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", relPath).Err(err).Msg("error matching exclude pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("path", relPath).Str("pattern", pattern).Msg("path excluded by pattern")
			return true
		}
	}

	return false
}

// 🔍 plainName reports whether the pattern is a bare directory name.
// Trailing separators are trimmed so "build/" behaves like "build".
func plainName(pattern string) (string, bool) {
	name := strings.TrimRight(pattern, "/")
	if name == "" {
		return "", false
	}
	if strings.ContainsAny(name, "*?[{") || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

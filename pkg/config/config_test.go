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

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/clipcat/pkg/config"
)

// 🧪 testContext creates a context with a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 writeConfig writes a config file into a temp dir and returns its path
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// 🧪 TestLoadYAML tests parsing a YAML config file
func TestLoadYAML(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.yaml", `
recursive: true
exclude:
  - node_modules
  - "*.lock"
extensions:
  - .go
`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	assert.True(t, cfg.Recursive)
	assert.Equal(t, []string{"node_modules", "*.lock"}, cfg.Exclude)
	assert.Equal(t, []string{".go"}, cfg.Extensions)
	assert.False(t, cfg.Verbose)
}

// 🧪 TestLoadHCL tests parsing an HCL config file
func TestLoadHCL(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.hcl", `
recursive = true
exclude   = ["node_modules", "dist"]
include   = ["*.go"]
`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	assert.True(t, cfg.Recursive)
	assert.Equal(t, []string{"node_modules", "dist"}, cfg.Exclude)
	assert.Equal(t, []string{"*.go"}, cfg.Include)
}

// 🧪 TestLoadJSON tests parsing a JSON config file
func TestLoadJSON(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.json", `{"verbose": true, "extensions": [".md"]}`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{".md"}, cfg.Extensions)
}

// 🧪 TestLoadMissingFileReturnsDefaults tests that no config file is fine
func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	ctx := testContext(t)

	cfg, err := config.Load(ctx, filepath.Join(t.TempDir(), ".clipcat.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

// 🧪 TestLoadUnknownFieldFails tests strict YAML decoding
func TestLoadUnknownFieldFails(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.yaml", "recursiv: true\n")

	_, err := config.Load(ctx, path)
	require.Error(t, err)
}

// 🧪 TestLoadInvalidPatternFails tests pattern validation on load
func TestLoadInvalidPatternFails(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.yaml", "exclude:\n  - \"[unclosed\"\n")

	_, err := config.Load(ctx, path)
	require.Error(t, err)
}

// 🧪 TestLoadUnsupportedExtensionFails tests the parser registry miss
func TestLoadUnsupportedExtensionFails(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, ".clipcat.toml", "recursive = true\n")

	_, err := config.Load(ctx, path)
	require.Error(t, err)
}

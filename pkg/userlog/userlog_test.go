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

package userlog_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/clipcat/pkg/userlog"
	"gitlab.com/tozd/go/errors"
)

// 🧪 newTestLogger creates a logger writing into a buffer
func newTestLogger(t *testing.T) (*userlog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(zerolog.NewTestWriter(t))
	return userlog.NewWithWriter(log, &buf), &buf
}

// 🧪 TestCopied tests the success line
func TestCopied(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Copied("Copied 3 file(s) (42 bytes) to clipboard.")
	assert.Contains(t, buf.String(), "Copied 3 file(s) (42 bytes) to clipboard.")
}

// 🧪 TestInfo tests the neutral line
func TestInfo(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("No changes found.")
	assert.Contains(t, buf.String(), "No changes found.")
}

// 🧪 TestFailure tests that the message and the error are both printed
func TestFailure(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Failure("copying to clipboard", errors.New("no clipboard service"))
	assert.Contains(t, buf.String(), "copying to clipboard")
	assert.Contains(t, buf.String(), "no clipboard service")
}

// 🧪 TestMatches tests the preview listing shape
func TestMatches(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Matches([]string{"a.go", "pkg/b.go"})

	out := buf.String()
	assert.Contains(t, out, "Matched files:")
	assert.Contains(t, out, "a.go")
	assert.Contains(t, out, "pkg/b.go")
	assert.Contains(t, out, "Total: 2 file(s) matched.")
}

// 🧪 TestMatchesEmpty tests the zero-match listing
func TestMatchesEmpty(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Matches(nil)
	assert.Contains(t, buf.String(), "Total: 0 file(s) matched.")
}

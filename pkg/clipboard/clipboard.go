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

package clipboard

import (
	"context"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 Clipboard writes text to a clipboard-like destination
type Clipboard interface {
	// Copy replaces the clipboard contents with text
	Copy(ctx context.Context, text string) error
}

// 🖥️ System writes to the operating system clipboard
type System struct{}

// 🏭 NewSystem creates a system clipboard writer
func NewSystem() *System {
	return &System{}
}

func (s *System) Copy(ctx context.Context, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Errorf("writing system clipboard: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Int("bytes", len(text)).Msg("copied to system clipboard")
	return nil
}

// 🧠 Memory records writes in process memory. Used by tests and anywhere a
// real clipboard is unavailable.
type Memory struct {
	mu     sync.Mutex
	writes []string
}

// 🏭 NewMemory creates an in-memory clipboard
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Copy(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return nil
}

// 🔍 Last returns the most recent write, if any
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return "", false
	}
	return m.writes[len(m.writes)-1], true
}

// 📊 Writes returns the number of writes performed
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

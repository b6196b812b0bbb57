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

// Package userlog provides user-facing console feedback, kept separate from
// the structured zerolog stream that goes to stderr.
package userlog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Logger prints human-readable feedback and mirrors it to zerolog
type Logger struct {
	log     zerolog.Logger
	out     io.Writer
	success pterm.PrefixPrinter
	info    pterm.PrefixPrinter
	failure pterm.PrefixPrinter
}

// 🏭 New creates a logger writing to stdout
func New(log zerolog.Logger) *Logger {
	return NewWithWriter(log, os.Stdout)
}

// 🏭 NewWithWriter creates a logger writing to w. Used by tests.
func NewWithWriter(log zerolog.Logger, w io.Writer) *Logger {
	return &Logger{
		log:     log,
		out:     w,
		success: *pterm.Success.WithPrefix(pterm.Prefix{Text: "📋"}).WithWriter(w),
		info:    *pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"}).WithWriter(w),
		failure: *pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(w),
	}
}

// ✅ Copied reports a successful clipboard write
func (l *Logger) Copied(msg string) {
	l.success.Println(msg)
	l.log.Info().Msg(msg)
}

// ℹ️ Info reports a neutral outcome, like an empty diff
func (l *Logger) Info(msg string) {
	l.info.Println(msg)
	l.log.Info().Msg(msg)
}

// ❌ Failure reports an error to the user
func (l *Logger) Failure(msg string, err error) {
	l.failure.Println(msg)
	if err != nil {
		l.failure.Println(err)
	}
	l.log.Error().Err(err).Msg(msg)
}

// 📝 Matches prints the preview listing with a trailing count, matching the
// plain-text shape users pipe into other tools.
func (l *Logger) Matches(paths []string) {
	header := color.New(color.Bold)
	entry := color.New(color.FgCyan)

	header.Fprintln(l.out, "Matched files:")
	for _, p := range paths {
		entry.Fprintln(l.out, p)
	}
	fmt.Fprintf(l.out, "\nTotal: %d file(s) matched.\n", len(paths))

	l.log.Info().Int("matched", len(paths)).Msg("preview listing printed")
}

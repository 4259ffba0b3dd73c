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

// Package log provides the user-facing console logger for copytree. It
// pairs pretty console lines with structured zerolog output.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/status"
)

// 🎯 TaskOperation represents one tree-copy task for logging
type TaskOperation struct {
	Name        string // Task name
	Source      string // Source tree root
	Destination string // Destination tree root
	Async       bool   // Whether tasks run concurrently
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *TaskOperation
	entries   []status.Entry
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 LogEntry logs the result of one tree entry
func (l *Logger) LogEntry(ctx context.Context, e status.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to entries list
	l.entries = append(l.entries, e)

	// Format and print
	fmt.Fprintln(l.console, status.FormatEntryRow(e))

	// Log to zerolog
	ev := l.zlog.Info().
		Str("path", e.Path).
		Str("dest", e.Dest).
		Str("outcome", e.Outcome.String()).
		Int("attrs", e.Attrs)
	if e.Err != nil {
		ev = ev.Err(e.Err)
	}
	ev.Msg("tree entry")
}

// 📝 StartTaskOperation starts a new tree-copy task
func (l *Logger) StartTaskOperation(ctx context.Context, op TaskOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.entries = nil

	// Print task header
	fmt.Fprintf(l.console, "[copying %s]\n",
		color.New(color.FgCyan).Sprint(op.Source))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Destination))

	// Log to zerolog
	l.zlog.Info().
		Str("task", op.Name).
		Str("source", op.Source).
		Str("destination", op.Destination).
		Bool("async", op.Async).
		Msg("starting task")
}

// 📝 EndTaskOperation ends the current tree-copy task
func (l *Logger) EndTaskOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	// Log summary
	l.zlog.Info().
		Str("task", l.currentOp.Name).
		Int("entries", len(l.entries)).
		Msg("task complete")

	l.currentOp = nil
	l.entries = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Summary prints the final outcome counts of a run
func (l *Logger) Summary(s status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	formatter := status.NewDefaultEntryFormatter()
	fmt.Fprintln(l.console, formatter.FormatSummary(s))

	l.zlog.Info().
		Int("copied", s.Copied).
		Int("linked", s.Linked).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Msg("run summary")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copytreeText := color.New(color.Bold, color.FgCyan).Sprint("copytree")
	fmt.Fprintf(l.console, "\n%s %s\n\n", copytreeText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

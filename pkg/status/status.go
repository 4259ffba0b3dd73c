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

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 Outcome represents what happened to one tree entry.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeCopied          // Content (and metadata) landed in the destination
	OutcomeLinked          // Symlink was recreated instead of followed
	OutcomeSkipped         // Entry matched an exclusion
	OutcomeFailed          // Entry produced an error
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeLinked:
		return "linked"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Entry records the result for one source path.
type Entry struct {
	Path    string  // Source path of the entry
	Dest    string  // Where it was (or would have been) written
	Outcome Outcome // What happened
	Attrs   int     // Extended attributes propagated with it
	Err     error   // Any error associated with this entry
}

// 📈 Reporter tracks per-entry results and summarizes them.
type Reporter interface {
	Track(ctx context.Context, path string, e Entry)
	Get(path string) (Entry, bool)
	List() []Entry
	Summarize() Summary
}

// 🧮 Summary aggregates outcomes across a whole run.
type Summary struct {
	Copied  int
	Linked  int
	Skipped int
	Failed  int
}

// Total returns the number of entries the summary covers.
func (s Summary) Total() int {
	return s.Copied + s.Linked + s.Skipped + s.Failed
}

// 🔧 Manager implements Reporter over an in-memory table.
type Manager struct {
	logger    *zerolog.Logger // Logger for per-entry updates
	formatter EntryFormatter  // Formatter for status messages

	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		formatter: NewDefaultEntryFormatter(),
		entries:   make(map[string]Entry),
	}
}

// Track records the result for path, overwriting any earlier result.
func (m *Manager) Track(ctx context.Context, path string, e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, tracked := m.entries[path]; !tracked {
		m.order = append(m.order, path)
	}
	m.entries[path] = e

	msg := m.formatter.FormatEntry(e)
	if e.Err != nil {
		msg = m.formatter.FormatError(e.Err)
	}
	ev := m.logger.Info().Str("path", path)
	if e.Err != nil {
		ev = ev.Err(e.Err)
	}
	ev.Msg(msg)
}

// Get returns the recorded entry for path.
func (m *Manager) Get(path string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[path]
	return e, ok
}

// List returns all entries in the order they were first tracked.
func (m *Manager) List() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.entries))
	for _, path := range m.order {
		entries = append(entries, m.entries[path])
	}
	return entries
}

// Failures returns only the entries that failed, in tracking order.
func (m *Manager) Failures() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var failed []Entry
	for _, path := range m.order {
		if e := m.entries[path]; e.Outcome == OutcomeFailed {
			failed = append(failed, e)
		}
	}
	return failed
}

// Summarize counts outcomes across every tracked entry.
func (m *Manager) Summarize() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s Summary
	for _, e := range m.entries {
		switch e.Outcome {
		case OutcomeCopied:
			s.Copied++
		case OutcomeLinked:
			s.Linked++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Finish logs the run summary.
func (m *Manager) Finish(ctx context.Context) {
	s := m.Summarize()
	m.logger.Info().
		Int("copied", s.Copied).
		Int("linked", s.Linked).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Msg(m.formatter.FormatSummary(s))
}

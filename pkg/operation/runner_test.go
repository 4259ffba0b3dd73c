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

package operation

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// stubOperation lets tests script an operation's behavior.
type stubOperation struct {
	name    string
	execute func(ctx context.Context) error
}

func (s *stubOperation) Name() string { return s.name }

func (s *stubOperation) Execute(ctx context.Context) error {
	if s.execute != nil {
		return s.execute(ctx)
	}
	return nil
}

func newTestRunner(t *testing.T, async bool) *OperationRunner {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewRunner(&logger, async)
}

func TestRunner_Run(t *testing.T) {
	for _, async := range []bool{false, true} {
		name := "sync"
		if async {
			name = "async"
		}
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			runner := newTestRunner(t, async)

			ran := false
			op := &stubOperation{name: "copy media", execute: func(ctx context.Context) error {
				ran = true
				return nil
			}}

			require.NoError(t, runner.Run(ctx, op))
			assert.True(t, ran, "operation should execute")
		})
	}
}

func TestRunner_RunPropagatesError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	for _, async := range []bool{false, true} {
		runner := newTestRunner(t, async)
		op := &stubOperation{name: "copy media", execute: func(ctx context.Context) error {
			return boom
		}}

		err := runner.Run(ctx, op)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	}
}

func TestRunner_RunAll_IsolatesFailures(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(t, false)

	var ran []string
	ops := []Operation{
		&stubOperation{name: "copy media", execute: func(ctx context.Context) error {
			ran = append(ran, "media")
			return errors.New("disk full")
		}},
		&stubOperation{name: "copy docs", execute: func(ctx context.Context) error {
			ran = append(ran, "docs")
			return nil
		}},
	}

	err := runner.RunAll(ctx, ops)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy media")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, []string{"media", "docs"}, ran, "failure should not stop later operations")
}

func TestRunner_RunAllAsync(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(t, true)

	var (
		mu  sync.Mutex
		ran []string
	)
	record := func(name string, err error) *stubOperation {
		return &stubOperation{name: name, execute: func(ctx context.Context) error {
			mu.Lock()
			ran = append(ran, name)
			mu.Unlock()
			return err
		}}
	}

	ops := []Operation{
		record("copy a", nil),
		record("copy b", errors.New("boom")),
		record("copy c", nil),
	}

	err := runner.RunAll(ctx, ops)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy b")
	assert.Len(t, ran, 3, "every operation should run")

	// All green runs return nil.
	ran = nil
	require.NoError(t, runner.RunAll(ctx, []Operation{record("copy a", nil), record("copy c", nil)}))
	assert.Len(t, ran, 2)
}

func TestRunner_AsyncCancellation(t *testing.T) {
	runner := newTestRunner(t, true)

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	op := &stubOperation{name: "copy media", execute: func(ctx context.Context) error {
		<-block
		return nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	err := runner.Run(ctx, op)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation cancelled")
}

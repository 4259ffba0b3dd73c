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

	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/copytree"
	"github.com/walteh/copytree/pkg/extattr"
	"github.com/walteh/copytree/pkg/log"
	"github.com/walteh/copytree/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCopyOperation creates a copy operation for one task
func NewCopyOperation(opts Options, task config.Task) Operation {
	return &copyOperation{
		BaseOperation: NewBaseOperation(opts),
		task:          task,
	}
}

// 📦 copyOperation copies one configured tree
type copyOperation struct {
	BaseOperation
	task config.Task
}

// Name identifies the operation
func (op *copyOperation) Name() string {
	return "copy " + op.task.Name
}

// 🏃 Execute runs the copy operation
func (op *copyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("task", op.task.Name).
		Str("source", op.task.Source).
		Str("destination", op.task.Destination).
		Msg("starting copy task")

	op.UserLogger.StartTaskOperation(ctx, log.TaskOperation{
		Name:        op.task.Name,
		Source:      op.task.Source,
		Destination: op.task.Destination,
		Async:       op.Config.Async,
	})
	defer op.UserLogger.EndTaskOperation(ctx)

	if op.task.Clean {
		if err := removeDestination(ctx, op.task); err != nil {
			return errors.Errorf("cleaning destination: %w", err)
		}
	}

	copts := op.buildCopyOptions(ctx)
	if err := copytree.Copy(ctx, op.task.Source, op.task.Destination, copts); err != nil {
		if op.task.CollectErrors() {
			for _, leaf := range copytree.Errors(err) {
				op.trackFailure(ctx, leaf)
			}
		}
		return errors.Errorf("copying %s: %w", op.task.Source, err)
	}

	return nil
}

// 🔧 buildCopyOptions maps the task onto engine options
func (op *copyOperation) buildCopyOptions(ctx context.Context) *copytree.Options {
	copts := &copytree.Options{
		FollowSymlinks:  op.task.FollowSymlinks,
		Exclude:         op.task.Exclude,
		ExcludePatterns: op.task.ExcludePatterns,
		Attrs:           op.task.AttrSelection(),
		Store:           op.Store,
		Concurrency:     op.Config.Concurrency,
	}

	copts.OnProgress = func(src, dst string) {
		e := status.Entry{
			Path:    relTo(op.task.Source, src),
			Dest:    dst,
			Outcome: status.OutcomeCopied,
		}
		op.StatusMgr.Track(ctx, e.Path, e)
		op.UserLogger.LogEntry(ctx, e)
	}

	copts.OnLink = func(src, dst string) {
		e := status.Entry{
			Path:    relTo(op.task.Source, src),
			Dest:    dst,
			Outcome: status.OutcomeLinked,
		}
		op.StatusMgr.Track(ctx, e.Path, e)
		op.UserLogger.LogEntry(ctx, e)
	}

	if op.task.ContinueOnAttrError() {
		copts.OnAttrError = func(path, namespace, attr string, err error) copytree.Decision {
			// Filesystems without attribute support fail every call the
			// same way; one debug line per file is enough.
			if extattr.IsNotSupported(err) {
				zerolog.Ctx(ctx).Debug().Str("path", path).Msg("attributes not supported here")
				return copytree.Continue
			}
			op.UserLogger.Warningf("attribute %s.%s on %s: %v", namespace, attr, path, err)
			return copytree.Continue
		}
	}

	if !op.task.CollectErrors() {
		copts.OnError = func(src, dst string, err error) {
			e := status.Entry{
				Path:    relTo(op.task.Source, src),
				Dest:    dst,
				Outcome: status.OutcomeFailed,
				Err:     err,
			}
			op.StatusMgr.Track(ctx, e.Path, e)
			op.UserLogger.LogEntry(ctx, e)
		}
	}

	return copts
}

// ❌ trackFailure records one collected failure
func (op *copyOperation) trackFailure(ctx context.Context, err error) {
	e := status.Entry{Outcome: status.OutcomeFailed, Err: err}

	var copyErr *copytree.CopyError
	var attrErr *copytree.AttrError
	switch {
	case errors.As(err, &copyErr):
		e.Path = relTo(op.task.Source, copyErr.Src)
		e.Dest = copyErr.Dst
	case errors.As(err, &attrErr):
		e.Path = relTo(op.task.Source, attrErr.Path)
	default:
		e.Path = op.task.Source
	}

	op.StatusMgr.Track(ctx, e.Path, e)
	op.UserLogger.LogEntry(ctx, e)
}

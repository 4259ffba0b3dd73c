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
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a clean operation for one task
func NewCleanOperation(opts Options, task config.Task) Operation {
	return &cleanOperation{
		BaseOperation: NewBaseOperation(opts),
		task:          task,
	}
}

// 🧹 cleanOperation removes one task's destination tree
type cleanOperation struct {
	BaseOperation
	task config.Task
}

// Name identifies the operation
func (op *cleanOperation) Name() string {
	return "clean " + op.task.Name
}

// 🏃 Execute runs the clean operation
func (op *cleanOperation) Execute(ctx context.Context) error {
	if err := removeDestination(ctx, op.task); err != nil {
		return err
	}
	op.UserLogger.Infof("cleaned %s", op.task.Destination)
	return nil
}

// 🗑️ removeDestination deletes a task destination, refusing obviously
// dangerous targets.
func removeDestination(ctx context.Context, task config.Task) error {
	logger := zerolog.Ctx(ctx)
	dst := task.Destination

	switch dst {
	case "", ".", "/":
		return errors.Errorf("refusing to clean %q", dst)
	}
	if dst == task.Source {
		return errors.Errorf("refusing to clean source directory %q", dst)
	}

	if _, err := os.Lstat(dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("destination", dst).Msg("nothing to clean")
			return nil
		}
		return errors.Errorf("inspecting destination %s: %w", dst, err)
	}

	if err := os.RemoveAll(dst); err != nil {
		return errors.Errorf("removing destination %s: %w", dst, err)
	}

	logger.Debug().Str("destination", dst).Msg("destination removed")
	return nil
}

// Package operation wires configured tasks to the tree-copy engine
package operation

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/extattr"
	"github.com/walteh/copytree/pkg/log"
	"github.com/walteh/copytree/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one unit of work the runner can execute
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators operations need
type Options struct {
	// Config is the loaded task file
	Config *config.Config
	// Store resolves extended attributes; nil uses the system store
	Store extattr.Store
	// StatusMgr tracks per-entry results
	StatusMgr status.Reporter
	// UserLogger renders progress for humans
	UserLogger *log.Logger
}

func (o Options) validate() error {
	if o.Config == nil {
		return errors.Errorf("config is required")
	}
	if o.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if o.UserLogger == nil {
		return errors.Errorf("user logger is required")
	}
	return nil
}

// 🧰 BaseOperation carries the shared collaborators
type BaseOperation struct {
	Config     *config.Config
	Store      extattr.Store
	StatusMgr  status.Reporter
	UserLogger *log.Logger
}

// 🏭 NewBaseOperation creates the shared operation base
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		Config:     opts.Config,
		Store:      opts.Store,
		StatusMgr:  opts.StatusMgr,
		UserLogger: opts.UserLogger,
	}
}

// 📋 Tasks builds one copy operation per configured task
func Tasks(opts Options) ([]Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ops := make([]Operation, 0, len(opts.Config.Tasks))
	for _, task := range opts.Config.Tasks {
		ops = append(ops, NewCopyOperation(opts, task))
	}
	return ops, nil
}

// 🧹 CleanTasks builds one clean operation per configured task
func CleanTasks(opts Options) ([]Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ops := make([]Operation, 0, len(opts.Config.Tasks))
	for _, task := range opts.Config.Tasks {
		ops = append(ops, NewCleanOperation(opts, task))
	}
	return ops, nil
}

// relTo returns path relative to root for display, falling back to the
// absolute path when it lies outside root.
func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

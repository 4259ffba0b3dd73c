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

package copytree

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/extattr"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📋 Copy replicates the tree rooted at src into dst.
//
// Directories are recreated and recursed into, regular files have their
// contents, permissions and timestamps copied, and symlinks are recreated
// verbatim unless FollowSymlinks is set. After each directory's children
// are processed its own permissions and timestamps are mirrored onto the
// destination, even when some children failed.
//
// Failures on individual entries do not stop the walk. Without an OnError
// callback they are collected and returned as one aggregate error whose
// entries unpack via Errors; with a callback each failure is delivered as
// it happens and Copy returns nil. A destination directory that cannot be
// created ends the affected subtree immediately: at the top level Copy
// returns that error alone, below it the parent records one entry for the
// whole subtree. Cancellation of ctx stops the walk with the context's
// error.
func Copy(ctx context.Context, src, dst string, opts *Options) error {
	var o Options
	if opts != nil {
		o = *opts
	}
	for _, pattern := range o.ExcludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	c := &copier{opts: o, store: o.Store}
	if c.store == nil {
		c.store = extattr.System()
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	return c.copy(ctx, src, dst)
}

// copier carries the normalized options through the walk. cbMu serializes
// every user callback, and with it the per-level error lists, so callers
// never need their own locking even with Concurrency set.
type copier struct {
	opts  Options
	store extattr.Store
	cbMu  sync.Mutex
}

// progress fires the OnProgress callback under the callback lock.
func (c *copier) progress(srcName, dstName string) {
	if c.opts.OnProgress == nil {
		return
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.opts.OnProgress(srcName, dstName)
}

// link fires the OnLink callback under the callback lock.
func (c *copier) link(srcName, dstName string) {
	if c.opts.OnLink == nil {
		return
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.opts.OnLink(srcName, dstName)
}

// validateSelection fails fast when a named attribute namespace does not
// exist, before any filesystem work happens.
func (c *copier) validateSelection() error {
	if c.opts.Attrs.mode != attrsNamed {
		return nil
	}
	table, err := c.store.Namespaces()
	if err != nil {
		return errors.Errorf("listing attribute namespaces: %w", err)
	}
	for _, name := range c.opts.Attrs.names {
		if _, ok := table[name]; !ok {
			return errors.Errorf("unknown attribute namespace %q", name)
		}
	}
	return nil
}

// copy processes one level of the tree: classify the source, walk the
// entries, then mirror the source's own metadata onto the destination.
func (c *copier) copy(ctx context.Context, src, dst string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("src", src).Str("dst", dst).Msg("copying tree level")

	names, isDir, err := c.classify(src, dst)
	if err != nil {
		return err
	}

	var errs *multierror.Error

	// record routes one failure according to the error mode. Aggregates
	// from sub-copies fold in flat so the result never nests. The callback
	// lock doubles as the collector lock.
	record := func(src, dst string, entryErr error) {
		c.cbMu.Lock()
		defer c.cbMu.Unlock()

		logger.Debug().Str("src", src).Str("dst", dst).Err(entryErr).Msg("entry failed")
		if merr, ok := entryErr.(*multierror.Error); ok {
			if c.opts.OnError != nil {
				reportLeaves(c.opts.OnError, src, dst, merr)
				return
			}
			errs = multierror.Append(errs, merr)
			return
		}
		if c.opts.OnError != nil {
			c.opts.OnError(src, dst, entryErr)
			return
		}
		errs = multierror.Append(errs, &CopyError{Src: src, Dst: dst, Err: entryErr})
	}

	process := func(ctx context.Context, name string) error {
		if cerr := ctx.Err(); cerr != nil {
			return errors.Errorf("copying %s: %w", src, cerr)
		}
		srcName, dstName := src, dst
		if isDir {
			srcName = filepath.Join(src, name)
			dstName = filepath.Join(dst, name)
		}
		entryErr := c.copyEntry(ctx, srcName, dstName)
		if entryErr == nil {
			return nil
		}
		if errors.Is(entryErr, context.Canceled) || errors.Is(entryErr, context.DeadlineExceeded) {
			return entryErr
		}
		record(srcName, dstName, entryErr)
		return nil
	}

	if limit := c.opts.Concurrency; limit > 1 && len(names) > 1 {
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(limit)
		for _, name := range names {
			name := name
			group.Go(func() error {
				return process(gctx, name)
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}
	} else {
		for _, name := range names {
			if err := process(ctx, name); err != nil {
				return err
			}
		}
	}

	// The source's own mode and times are mirrored even when children
	// failed, so a partially copied directory still looks like its source.
	if err := copyStat(src, dst); err != nil {
		record(src, dst, err)
	}

	return errs.ErrorOrNil()
}

// classify decides between single-entry and directory traversal. In the
// directory case the destination directory is created up front and the
// children are listed with exclusions already applied. Sources that are
// neither symlink, regular file nor directory fall through to single-entry
// handling so their failure is recorded per entry instead of aborting the
// walk.
func (c *copier) classify(src, dst string) ([]string, bool, error) {
	if !c.opts.FollowSymlinks {
		if info, err := os.Lstat(src); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			return []string{src}, false, nil
		}
	}

	info, err := os.Stat(src)
	if err == nil && info.Mode().IsRegular() {
		return []string{src}, false, nil
	}
	if err == nil && info.IsDir() {
		if mkErr := os.MkdirAll(dst, 0o755); mkErr != nil && !errors.Is(mkErr, fs.ErrExist) {
			return nil, false, errors.Errorf("creating destination directory %s: %w", dst, mkErr)
		}
		children, readErr := os.ReadDir(src)
		if readErr != nil {
			return nil, false, errors.Errorf("reading source directory %s: %w", src, readErr)
		}
		names := make([]string, 0, len(children))
		for _, child := range children {
			if c.opts.excluded(child.Name()) {
				continue
			}
			names = append(names, child.Name())
		}
		return names, true, nil
	}

	return []string{src}, false, nil
}

// copyEntry replicates a single entry: symlinks are recreated, directories
// recurse with the same options, everything else takes the file path of
// progress callback, contents, metadata, then extended attributes.
func (c *copier) copyEntry(ctx context.Context, srcName, dstName string) error {
	if !c.opts.FollowSymlinks {
		if info, err := os.Lstat(srcName); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			target, err := os.Readlink(srcName)
			if err != nil {
				return errors.Errorf("reading link target: %w", err)
			}
			zerolog.Ctx(ctx).Debug().Str("src", srcName).Str("target", target).Msg("recreating symlink")
			if err := os.Symlink(target, dstName); err != nil {
				return errors.Errorf("recreating symlink: %w", err)
			}
			c.link(srcName, dstName)
			return nil
		}
	}

	if info, err := os.Stat(srcName); err == nil && info.IsDir() {
		return c.copy(ctx, srcName, dstName)
	}

	c.progress(srcName, dstName)
	if err := copyFileContents(srcName, dstName); err != nil {
		return err
	}
	if err := copyStat(srcName, dstName); err != nil {
		return err
	}
	return c.copyAttrs(ctx, srcName, dstName)
}

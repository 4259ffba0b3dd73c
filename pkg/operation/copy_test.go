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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/extattr"
	"github.com/walteh/copytree/pkg/status"
)

func TestCopyOperation_Execute(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "file.txt"), "hello")
	writeFile(t, filepath.Join(src, "sub", "data.txt"), "data")
	require.NoError(t, os.Symlink("file.txt", filepath.Join(src, "link")))

	cfg := &config.Config{Tasks: []config.Task{{
		Name:        "media",
		Source:      src,
		Destination: dst,
	}}}
	opts, mgr := newTestOptions(t, cfg)

	op := NewCopyOperation(opts, cfg.Tasks[0])
	assert.Equal(t, "copy media", op.Name())
	require.NoError(t, op.Execute(ctx))

	content, err := os.ReadFile(filepath.Join(dst, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	content, err = os.ReadFile(filepath.Join(dst, "sub", "data.txt"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	info, err := os.Lstat(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "symlink should be recreated, not followed")

	e, ok := mgr.Get("file.txt")
	require.True(t, ok)
	assert.Equal(t, status.OutcomeCopied, e.Outcome)
	assert.Equal(t, filepath.Join(dst, "file.txt"), e.Dest)

	_, ok = mgr.Get("sub/data.txt")
	assert.True(t, ok)

	link, ok := mgr.Get("link")
	require.True(t, ok, "recreated links are tracked")
	assert.Equal(t, status.OutcomeLinked, link.Outcome)

	summary := mgr.Summarize()
	assert.Equal(t, status.Summary{Copied: 2, Linked: 1}, summary)
}

func TestCopyOperation_CollectsFailures(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "good.txt"), "ok")
	require.NoError(t, os.Symlink("missing.txt", filepath.Join(src, "broken")))

	cfg := &config.Config{Tasks: []config.Task{{
		Name:           "media",
		Source:         src,
		Destination:    dst,
		FollowSymlinks: true,
	}}}
	opts, mgr := newTestOptions(t, cfg)

	op := NewCopyOperation(opts, cfg.Tasks[0])
	err := op.Execute(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying")

	// The healthy sibling still landed.
	content, rerr := os.ReadFile(filepath.Join(dst, "good.txt"))
	require.NoError(t, rerr)
	assert.Equal(t, "ok", string(content))

	e, ok := mgr.Get("broken")
	require.True(t, ok, "failed entry should be tracked")
	assert.Equal(t, status.OutcomeFailed, e.Outcome)
	require.Error(t, e.Err)

	good, ok := mgr.Get("good.txt")
	require.True(t, ok)
	assert.Equal(t, status.OutcomeCopied, good.Outcome)
}

func TestCopyOperation_ContinueMode(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "good.txt"), "ok")
	require.NoError(t, os.Symlink("missing.txt", filepath.Join(src, "broken")))

	cfg := &config.Config{Tasks: []config.Task{{
		Name:           "media",
		Source:         src,
		Destination:    dst,
		FollowSymlinks: true,
		OnError:        "continue",
	}}}
	opts, mgr := newTestOptions(t, cfg)

	op := NewCopyOperation(opts, cfg.Tasks[0])
	require.NoError(t, op.Execute(ctx), "streaming mode keeps the task green")

	e, ok := mgr.Get("broken")
	require.True(t, ok)
	assert.Equal(t, status.OutcomeFailed, e.Outcome)

	_, err := os.Stat(filepath.Join(dst, "good.txt"))
	assert.NoError(t, err)
}

func TestCopyOperation_CleanDestinationFirst(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "fresh.txt"), "new")
	writeFile(t, filepath.Join(dst, "stale.txt"), "old")

	cfg := &config.Config{Tasks: []config.Task{{
		Name:        "media",
		Source:      src,
		Destination: dst,
		Clean:       true,
	}}}
	opts, _ := newTestOptions(t, cfg)

	op := NewCopyOperation(opts, cfg.Tasks[0])
	require.NoError(t, op.Execute(ctx))

	_, err := os.Stat(filepath.Join(dst, "stale.txt"))
	assert.True(t, os.IsNotExist(err), "stale file should be cleaned away")

	_, err = os.Stat(filepath.Join(dst, "fresh.txt"))
	assert.NoError(t, err)
}

func TestCopyOperation_Excludes(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "keep.txt"), "keep")
	writeFile(t, filepath.Join(src, "skip.tmp"), "skip")
	writeFile(t, filepath.Join(src, ".git", "config"), "gitdata")

	cfg := &config.Config{Tasks: []config.Task{{
		Name:            "media",
		Source:          src,
		Destination:     dst,
		Exclude:         []string{".git"},
		ExcludePatterns: []string{"*.tmp"},
	}}}
	opts, _ := newTestOptions(t, cfg)

	op := NewCopyOperation(opts, cfg.Tasks[0])
	require.NoError(t, op.Execute(ctx))

	_, err := os.Stat(filepath.Join(dst, "keep.txt"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dst, "skip.tmp"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dst, ".git"))
	assert.True(t, os.IsNotExist(err))
}

func TestCopyOperation_PropagatesAttributes(t *testing.T) {
	ctx := testContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	srcFile := filepath.Join(src, "tagged.txt")
	writeFile(t, srcFile, "content")

	mem := extattr.NewMemStore()
	ids, err := mem.Namespaces()
	require.NoError(t, err)
	userID := ids["user"]
	mem.SetAttr(srcFile, userID, "origin", []byte("alpha"))

	cfg := &config.Config{Tasks: []config.Task{{
		Name:                "media",
		Source:              src,
		Destination:         dst,
		AttributeNamespaces: []string{"user"},
	}}}
	opts, _ := newTestOptions(t, cfg)
	opts.Store = mem

	op := NewCopyOperation(opts, cfg.Tasks[0])
	require.NoError(t, op.Execute(ctx))

	attrs := mem.Attrs(filepath.Join(dst, "tagged.txt"), userID)
	assert.Equal(t, []byte("alpha"), attrs["origin"])
}

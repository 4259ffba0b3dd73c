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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// copyAttrs propagates extended attributes from srcName onto dstName
// according to the configured selection. The namespace table is read fresh
// for every file. Each failure consults OnAttrError: Continue skips the
// failed namespace or attribute, anything else ends attribute work for
// this file and the failure becomes the entry's error. The file's contents
// are already in place by the time this runs.
func (c *copier) copyAttrs(ctx context.Context, srcName, dstName string) error {
	if c.opts.Attrs.IsNone() {
		return nil
	}
	logger := zerolog.Ctx(ctx)

	table, err := c.store.Namespaces()
	if err != nil {
		return errors.Errorf("listing attribute namespaces: %w", err)
	}
	follow := c.opts.FollowSymlinks

	for _, ns := range c.opts.Attrs.resolve(table) {
		names, err := c.store.List(srcName, ns.id, follow)
		if err != nil {
			if c.decide(srcName, ns.name, "", err) == Continue {
				logger.Debug().Str("path", srcName).Str("namespace", ns.name).Err(err).Msg("skipping attribute namespace")
				continue
			}
			return &AttrError{Path: srcName, Namespace: ns.name, Op: "list", Err: err}
		}

		for _, attr := range names {
			if !c.filterAttr(srcName, ns.name, attr) {
				continue
			}
			value, err := c.store.Get(srcName, ns.id, attr, follow)
			if err != nil {
				if c.decide(srcName, ns.name, attr, err) == Continue {
					logger.Debug().Str("path", srcName).Str("attr", ns.name+"."+attr).Err(err).Msg("skipping attribute")
					continue
				}
				return &AttrError{Path: srcName, Namespace: ns.name, Name: attr, Op: "get", Err: err}
			}
			if err := c.store.Set(dstName, ns.id, map[string][]byte{attr: value}, follow); err != nil {
				if c.decide(dstName, ns.name, attr, err) == Continue {
					logger.Debug().Str("path", dstName).Str("attr", ns.name+"."+attr).Err(err).Msg("skipping attribute")
					continue
				}
				return &AttrError{Path: dstName, Namespace: ns.name, Name: attr, Op: "set", Err: err}
			}
		}
	}
	return nil
}

// filterAttr consults the AttrFilter callback, keeping the attribute when
// none is set.
func (c *copier) filterAttr(path, namespace, attr string) bool {
	if c.opts.AttrFilter == nil {
		return true
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	return c.opts.AttrFilter(path, namespace, attr)
}

// decide consults the OnAttrError callback, aborting when none is set.
func (c *copier) decide(path, namespace, attr string, err error) Decision {
	if c.opts.OnAttrError == nil {
		return Abort
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	return c.opts.OnAttrError(path, namespace, attr, err)
}

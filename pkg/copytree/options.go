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
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/copytree/pkg/extattr"
)

// 🔧 Options configures a Copy call. The zero value copies the tree as-is:
// symlinks preserved, nothing excluded, no attributes, errors collected.
type Options struct {
	// FollowSymlinks copies what symlinks point at instead of recreating
	// the links themselves.
	FollowSymlinks bool

	// Exclude lists child names to skip wherever a directory is copied.
	// Excluded entries are dropped before any work happens on them.
	Exclude []string

	// ExcludePatterns holds doublestar patterns matched against child
	// names, complementing Exclude.
	ExcludePatterns []string

	// Attrs selects which extended attribute namespaces are propagated to
	// the regular files this call copies.
	Attrs AttrSelection

	// Store is the attribute store to read and write through. Nil selects
	// the operating system store.
	Store extattr.Store

	// OnProgress fires with (src, dst) immediately before a file's
	// contents are copied.
	OnProgress func(src, dst string)

	// OnLink fires with (src, dst) after a symlink has been recreated at
	// dst. Only relevant while FollowSymlinks is false; followed links are
	// ordinary file copies and report through OnProgress.
	OnLink func(src, dst string)

	// AttrFilter decides per attribute whether it is propagated. Nil keeps
	// everything the selection resolves to.
	AttrFilter func(path, namespace, attr string) bool

	// OnAttrError is consulted after an attribute-level failure. Continue
	// skips the failed namespace or attribute; Abort, or no callback at
	// all, ends attribute work for the file and records the failure as
	// that file's error.
	OnAttrError func(path, namespace, attr string, err error) Decision

	// OnError switches Copy from collecting failures into delivering each
	// one here the moment it happens. With a callback set, Copy itself
	// returns nil unless the top-level source or destination is unusable.
	OnError func(src, dst string, err error)

	// Concurrency caps how many children of one directory are processed
	// at a time. Zero or one keeps the walk sequential. Callbacks are
	// serialized either way.
	Concurrency int
}

// excluded reports whether a child name is dropped by Exclude or
// ExcludePatterns. Patterns are validated before the walk starts, so match
// errors cannot occur here.
func (o *Options) excluded(name string) bool {
	if slices.Contains(o.Exclude, name) {
		return true
	}
	for _, pattern := range o.ExcludePatterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ⚖️ Decision is the verdict of an OnAttrError callback. The zero value
// aborts, so a callback that forgets to decide fails safe.
type Decision uint8

const (
	// Abort stops attribute propagation for the file being processed.
	Abort Decision = iota
	// Continue skips the failed namespace or attribute and keeps going.
	Continue
)

func (d Decision) String() string {
	switch d {
	case Abort:
		return "abort"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

type attrMode uint8

const (
	attrsNone attrMode = iota
	attrsAll
	attrsNamed
)

// 🏷️ AttrSelection picks which attribute namespaces are propagated. The
// zero value propagates nothing.
type AttrSelection struct {
	mode  attrMode
	names []string
}

// AllAttrs propagates every namespace the store reports.
func AllAttrs() AttrSelection {
	return AttrSelection{mode: attrsAll}
}

// NamedAttrs propagates exactly the given namespaces. Duplicates are
// collapsed; names are checked against the store when Copy starts.
func NamedAttrs(namespaces ...string) AttrSelection {
	names := slices.Clone(namespaces)
	slices.Sort(names)
	names = slices.Compact(names)
	return AttrSelection{mode: attrsNamed, names: names}
}

// IsNone reports whether the selection propagates nothing.
func (s AttrSelection) IsNone() bool {
	return s.mode == attrsNone
}

func (s AttrSelection) String() string {
	switch s.mode {
	case attrsAll:
		return "all"
	case attrsNamed:
		return "named(" + strings.Join(s.names, ",") + ")"
	default:
		return "none"
	}
}

// namespace is one resolved attribute namespace.
type namespace struct {
	name string
	id   extattr.NamespaceID
}

// resolve maps the selection onto the store's current namespace table,
// sorted by name so propagation order is stable. Named selections were
// validated when the copy started; a namespace that vanished since is
// simply skipped.
func (s AttrSelection) resolve(table map[string]extattr.NamespaceID) []namespace {
	var out []namespace
	switch s.mode {
	case attrsAll:
		out = make([]namespace, 0, len(table))
		for name, id := range table {
			out = append(out, namespace{name: name, id: id})
		}
	case attrsNamed:
		out = make([]namespace, 0, len(s.names))
		for _, name := range s.names {
			if id, ok := table[name]; ok {
				out = append(out, namespace{name: name, id: id})
			}
		}
	default:
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

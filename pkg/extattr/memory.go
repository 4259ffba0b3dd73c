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

package extattr

import (
	"bytes"
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 🧠 MemStore is an in-memory Store. Paths are opaque keys, so the follow
// flag has no effect; listing a path nothing was ever written to yields an
// empty set, the way a file without attributes does.
type MemStore struct {
	mu    sync.RWMutex
	names map[string]NamespaceID
	byID  map[NamespaceID]string
	files map[string]map[NamespaceID]map[string][]byte
}

// NewMemStore creates a store exposing the given namespaces, assigning IDs
// in argument order. With no arguments a single "user" namespace is set up.
func NewMemStore(namespaces ...string) *MemStore {
	if len(namespaces) == 0 {
		namespaces = []string{"user"}
	}
	m := &MemStore{
		names: make(map[string]NamespaceID, len(namespaces)),
		byID:  make(map[NamespaceID]string, len(namespaces)),
		files: make(map[string]map[NamespaceID]map[string][]byte),
	}
	for i, name := range namespaces {
		id := NamespaceID(i + 1)
		m.names[name] = id
		m.byID[id] = name
	}
	return m
}

func (m *MemStore) Namespaces() (map[string]NamespaceID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]NamespaceID, len(m.names))
	for name, id := range m.names {
		out[name] = id
	}
	return out, nil
}

func (m *MemStore) List(path string, ns NamespaceID, follow bool) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.byID[ns]; !ok {
		return nil, errors.Errorf("%w: id %d", ErrUnknownNamespace, ns)
	}

	attrs := m.files[path][ns]
	out := make([]string, 0, len(attrs))
	for name := range attrs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemStore) Get(path string, ns NamespaceID, name string, follow bool) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.byID[ns]; !ok {
		return nil, errors.Errorf("%w: id %d", ErrUnknownNamespace, ns)
	}

	value, ok := m.files[path][ns][name]
	if !ok {
		return nil, errors.Errorf("attribute %q on %s: %w", name, path, ErrNotFound)
	}
	return bytes.Clone(value), nil
}

func (m *MemStore) Set(path string, ns NamespaceID, attrs map[string][]byte, follow bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[ns]; !ok {
		return errors.Errorf("%w: id %d", ErrUnknownNamespace, ns)
	}

	for name, value := range attrs {
		m.put(path, ns, name, value)
	}
	return nil
}

// SetAttr seeds a single attribute, creating the path entry as needed.
// Intended for test setup.
func (m *MemStore) SetAttr(path string, ns NamespaceID, name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path, ns, name, value)
}

// Attrs returns a snapshot of everything stored for path in the given
// namespace. Intended for test assertions.
func (m *MemStore) Attrs(path string, ns NamespaceID) map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte)
	for name, value := range m.files[path][ns] {
		out[name] = bytes.Clone(value)
	}
	return out
}

func (m *MemStore) put(path string, ns NamespaceID, name string, value []byte) {
	byNS, ok := m.files[path]
	if !ok {
		byNS = make(map[NamespaceID]map[string][]byte)
		m.files[path] = byNS
	}
	attrs, ok := byNS[ns]
	if !ok {
		attrs = make(map[string][]byte)
		byNS[ns] = attrs
	}
	attrs[name] = bytes.Clone(value)
}

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

// Package extattr provides access to extended file attributes grouped by
// namespace. The operating system store is the normal implementation;
// MemStore backs tests and dry runs.
package extattr

import (
	"gitlab.com/tozd/go/errors"
)

// 🔑 NamespaceID identifies an attribute namespace. IDs are only meaningful
// to the Store that handed them out via Namespaces.
type NamespaceID int

// Namespace IDs used by the operating system store.
const (
	NamespaceUser NamespaceID = iota + 1
	NamespaceSystem
	NamespaceTrusted
	NamespaceSecurity
)

var (
	// ErrUnknownNamespace is returned when a NamespaceID was not issued by
	// the store it is used with.
	ErrUnknownNamespace = errors.Base("extattr: unknown namespace")

	// ErrNotFound is returned by Get when the attribute does not exist.
	ErrNotFound = errors.Base("extattr: attribute not found")
)

// 📦 Store reads and writes extended attributes. The follow flag on each
// call selects whether a trailing symlink is dereferenced or operated on
// directly, mirroring the getxattr/lgetxattr split.
type Store interface {
	// Namespaces returns the namespaces this store knows about, keyed by
	// name. The map is a fresh copy the caller may modify.
	Namespaces() (map[string]NamespaceID, error)

	// List returns the attribute names present on path in the given
	// namespace, without any namespace qualification.
	List(path string, ns NamespaceID, follow bool) ([]string, error)

	// Get returns the value of a single attribute.
	Get(path string, ns NamespaceID, name string, follow bool) ([]byte, error)

	// Set writes the given attributes onto path. Values are written one at
	// a time; the first failure aborts the batch.
	Set(path string, ns NamespaceID, attrs map[string][]byte, follow bool) error
}

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
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gitlab.com/tozd/go/errors"
)

// ❌ CopyError records one failed entry: the source and destination paths
// involved and the underlying cause.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// 🏷️ AttrError records a failure in the attribute layer. Op is "list",
// "get" or "set"; Name is empty when listing a whole namespace failed.
type AttrError struct {
	Path      string
	Namespace string
	Name      string
	Op        string
	Err       error
}

func (e *AttrError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s %s attributes on %s: %v", e.Op, e.Namespace, e.Path, e.Err)
	}
	return fmt.Sprintf("%s attribute %s.%s on %s: %v", e.Op, e.Namespace, e.Name, e.Path, e.Err)
}

func (e *AttrError) Unwrap() error {
	return e.Err
}

// Errors unpacks an aggregate returned by Copy into the individual
// failures. Nil yields nil; a non-aggregate error comes back as a
// single-element slice.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	// Aggregates are always returned bare, never wrapped, so a plain type
	// assertion is enough. errors.As would descend into the list itself.
	if merr, ok := err.(*multierror.Error); ok {
		return merr.Errors
	}
	return []error{err}
}

// reportLeaves delivers every leaf cause inside err to onError, descending
// through any aggregate nesting. CopyError leaves carry their own paths;
// everything else is attributed to the entry being processed.
func reportLeaves(onError func(src, dst string, err error), src, dst string, err error) {
	if merr, ok := err.(*multierror.Error); ok {
		for _, nested := range merr.Errors {
			reportLeaves(onError, src, dst, nested)
		}
		return
	}
	var cerr *CopyError
	if errors.As(err, &cerr) {
		onError(cerr.Src, cerr.Dst, cerr.Err)
		return
	}
	onError(src, dst, err)
}

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

// Package config loads and validates copytree task files in YAML, JSON or
// HCL form.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/walteh/copytree/pkg/copytree"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config is a complete task file.
type Config struct {
	// Async runs tasks concurrently with each other.
	Async bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	// Concurrency caps sibling-entry parallelism inside each task. Zero
	// keeps every copy sequential.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`

	// Tasks are the tree copies to perform, in declaration order.
	Tasks []Task `json:"tasks" yaml:"tasks" hcl:"task,block"`

	location string
}

// 📋 Task describes one tree copy.
type Task struct {
	// Name labels the task in logs and status output. Defaults to its
	// position when omitted.
	Name string `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,label"`

	Source      string `json:"source" yaml:"source" hcl:"source"`
	Destination string `json:"destination" yaml:"destination" hcl:"destination"`

	// FollowSymlinks copies link targets instead of recreating links.
	FollowSymlinks bool `json:"follow_symlinks,omitempty" yaml:"follow_symlinks,omitempty" hcl:"follow_symlinks,optional"`

	// Exclude lists child names skipped at every directory level;
	// ExcludePatterns holds doublestar patterns doing the same.
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty" yaml:"exclude_patterns,omitempty" hcl:"exclude_patterns,optional"`

	// Attributes is "none" (default) or "all". Mutually exclusive with
	// AttributeNamespaces, which propagates only the named namespaces.
	Attributes          string   `json:"attributes,omitempty" yaml:"attributes,omitempty" hcl:"attributes,optional"`
	AttributeNamespaces []string `json:"attribute_namespaces,omitempty" yaml:"attribute_namespaces,omitempty" hcl:"attribute_namespaces,optional"`

	// AttributeErrors is "abort" (default) to fail a file on its first
	// attribute error, or "continue" to skip past them.
	AttributeErrors string `json:"attribute_errors,omitempty" yaml:"attribute_errors,omitempty" hcl:"attribute_errors,optional"`

	// OnError is "collect" (default) to aggregate failures and fail the
	// task at the end, or "continue" to report them as they happen and
	// keep the task green.
	OnError string `json:"on_error,omitempty" yaml:"on_error,omitempty" hcl:"on_error,optional"`

	// Clean removes the destination before copying.
	Clean bool `json:"clean,omitempty" yaml:"clean,omitempty" hcl:"clean,optional"`
}

// Location returns the path the config was loaded from.
func (c *Config) Location() string {
	return c.location
}

// 🔍 Validate fills in defaults and rejects inconsistent task files.
func (c *Config) Validate() error {
	if len(c.Tasks) == 0 {
		return errors.New("config declares no tasks")
	}
	if c.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}

	seen := make(map[string]bool, len(c.Tasks))
	for i := range c.Tasks {
		task := &c.Tasks[i]
		if task.Name == "" {
			task.Name = fmt.Sprintf("task-%d", i+1)
		}
		if seen[task.Name] {
			return errors.Errorf("duplicate task name %q", task.Name)
		}
		seen[task.Name] = true

		if err := task.validate(); err != nil {
			return errors.Errorf("task %q: %w", task.Name, err)
		}
	}
	return nil
}

func (t *Task) validate() error {
	if t.Source == "" {
		return errors.New("source is required")
	}
	if t.Destination == "" {
		return errors.New("destination is required")
	}
	t.Source = filepath.Clean(t.Source)
	t.Destination = filepath.Clean(t.Destination)

	switch t.Attributes {
	case "", "none", "all":
	default:
		return errors.Errorf("attributes must be \"none\" or \"all\", got %q", t.Attributes)
	}
	if t.Attributes == "all" && len(t.AttributeNamespaces) > 0 {
		return errors.New("attributes = \"all\" and attribute_namespaces are mutually exclusive")
	}

	switch t.AttributeErrors {
	case "", "abort", "continue":
	default:
		return errors.Errorf("attribute_errors must be \"abort\" or \"continue\", got %q", t.AttributeErrors)
	}

	switch t.OnError {
	case "", "collect", "continue":
	default:
		return errors.Errorf("on_error must be \"collect\" or \"continue\", got %q", t.OnError)
	}
	return nil
}

// AttrSelection converts the attribute fields into a copy selection.
func (t Task) AttrSelection() copytree.AttrSelection {
	if len(t.AttributeNamespaces) > 0 {
		return copytree.NamedAttrs(t.AttributeNamespaces...)
	}
	if t.Attributes == "all" {
		return copytree.AllAttrs()
	}
	return copytree.AttrSelection{}
}

// CollectErrors reports whether failures aggregate and fail the task,
// rather than streaming past it.
func (t Task) CollectErrors() bool {
	return t.OnError != "continue"
}

// ContinueOnAttrError reports whether attribute failures are skipped
// instead of aborting the file they belong to.
func (t Task) ContinueOnAttrError() bool {
	return t.AttributeErrors == "continue"
}

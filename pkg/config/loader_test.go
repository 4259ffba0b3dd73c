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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlConfig = `
async: true
concurrency: 2
tasks:
  - name: media
    source: /data/media
    destination: /backup/media
    follow_symlinks: true
    exclude:
      - .git
    exclude_patterns:
      - "*.tmp"
    attributes: all
    attribute_errors: continue
    on_error: continue
    clean: true
`

const jsonConfig = `{
  "async": true,
  "concurrency": 2,
  "tasks": [
    {
      "name": "media",
      "source": "/data/media",
      "destination": "/backup/media",
      "follow_symlinks": true,
      "exclude": [".git"],
      "exclude_patterns": ["*.tmp"],
      "attributes": "all",
      "attribute_errors": "continue",
      "on_error": "continue",
      "clean": true
    }
  ]
}`

const hclConfig = `
async       = true
concurrency = 2

task "media" {
  source           = "/data/media"
  destination      = "/backup/media"
  follow_symlinks  = true
  exclude          = [".git"]
  exclude_patterns = ["*.tmp"]
  attributes       = "all"
  attribute_errors = "continue"
  on_error         = "continue"
  clean            = true
}
`

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"yaml", "tasks.yaml", yamlConfig},
		{"yml", "tasks.yml", yamlConfig},
		{"json", "tasks.json", jsonConfig},
		{"hcl", "tasks.hcl", hclConfig},
		{"dotfile with yaml body", ".copytree", yamlConfig},
		{"dotfile with hcl body", ".copytree", hclConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			path := writeConfig(t, tt.filename, tt.content)

			cfg, err := Load(ctx, path)
			require.NoError(t, err)

			assert.True(t, cfg.Async)
			assert.Equal(t, 2, cfg.Concurrency)
			assert.Equal(t, path, cfg.Location())

			require.Len(t, cfg.Tasks, 1)
			task := cfg.Tasks[0]
			assert.Equal(t, "media", task.Name)
			assert.Equal(t, "/data/media", task.Source)
			assert.Equal(t, "/backup/media", task.Destination)
			assert.True(t, task.FollowSymlinks)
			assert.Equal(t, []string{".git"}, task.Exclude)
			assert.Equal(t, []string{"*.tmp"}, task.ExcludePatterns)
			assert.Equal(t, "all", task.Attributes)
			assert.Equal(t, "continue", task.AttributeErrors)
			assert.Equal(t, "continue", task.OnError)
			assert.True(t, task.Clean)
		})
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  string
	}{
		{
			name:     "yaml",
			filename: "tasks.yaml",
			content:  "tasks:\n  - source: /a\n    destination: /b\n    typo_field: true\n",
			wantErr:  "parsing YAML",
		},
		{
			name:     "json",
			filename: "tasks.json",
			content:  `{"tasks": [{"source": "/a", "destination": "/b", "typo_field": true}]}`,
			wantErr:  "parsing JSON",
		},
		{
			name:     "hcl",
			filename: "tasks.hcl",
			content:  "task \"a\" {\n  source      = \"/a\"\n  destination = \"/b\"\n  typo_field  = true\n}\n",
			wantErr:  "decoding HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			path := writeConfig(t, tt.filename, tt.content)

			_, err := Load(ctx, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, "tasks.toml", "tasks = []")

	_, err := Load(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported file extension ".toml"`)
}

func TestLoad_MissingFile(t *testing.T) {
	ctx := testContext(t)

	_, err := Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	ctx := testContext(t)
	path := writeConfig(t, "tasks.yaml", "tasks:\n  - destination: /b\n")

	_, err := Load(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
	assert.Contains(t, err.Error(), "source is required")
}

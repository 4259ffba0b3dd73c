package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd(t *testing.T) {
	ropts := newTestOpts(t)

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")

	contents := fmt.Sprintf(`
tasks:
  - name: media
    source: %s
    destination: %s
`, src, dst)

	configPath := filepath.Join(t.TempDir(), ".copytree.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o644))
	ropts.ConfigFile = configPath

	// The event logger mirrors its console lines into zerolog, which is
	// what the test observes.
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	cmd := NewStatusCmd(ropts)
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, buf.String(), "Trees need to be copied")

	writeFile(t, filepath.Join(dst, "a.txt"), "alpha")
	buf.Reset()

	cmd = NewStatusCmd(ropts)
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, buf.String(), "Trees are up to date")
}

func TestStatusCmd_MissingConfig(t *testing.T) {
	ropts := newTestOpts(t)
	ropts.ConfigFile = filepath.Join(t.TempDir(), "absent.yaml")

	cmd := NewStatusCmd(ropts)
	err := cmd.ExecuteContext(testContext(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

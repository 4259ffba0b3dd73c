package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"github.com/walteh/copytree/pkg/extattr"
	"github.com/walteh/copytree/pkg/log"
)

// testContext returns a context carrying a test logger
func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// newTestOpts builds RootOpts wired for tests: an in-memory attribute
// store and a discarded console.
func newTestOpts(t *testing.T) *opts.RootOpts {
	t.Helper()

	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	return &opts.RootOpts{
		Store:      extattr.NewMemStore(),
		UserLogger: log.New(io.Discard, zerolog.Disabled),
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

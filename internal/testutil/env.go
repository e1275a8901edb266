package testutil

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/ralphloop/internal/logging"
	"github.com/thruflo/ralphloop/internal/state"
)

// SetupTestRoot creates a temporary project root and a Store using the
// default state directory. The directory is removed when the test completes.
func SetupTestRoot(t *testing.T) (string, *state.Store) {
	t.Helper()

	root := t.TempDir()
	return root, state.NewStore(root, "")
}

// WriteStateFile writes raw content to the default state file under root.
func WriteStateFile(t *testing.T, root, content string) string {
	t.Helper()

	dir := filepath.Join(root, state.DefaultDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, state.StateFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteConfigFile writes raw content to <root>/.ralphloop.yaml.
func WriteConfigFile(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".ralphloop.yaml"), []byte(content), 0o644))
}

// CaptureLogger returns a debug-level logger and the buffer it writes to.
func CaptureLogger() (*logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.New()
	logger.SetLevel(logging.LevelDebug)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

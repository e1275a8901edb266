package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/ralphloop/internal/loop"
	"github.com/thruflo/ralphloop/internal/testutil"
)

func TestStartCommand(t *testing.T) {
	root := t.TempDir()
	useFixedClock(t, testutil.FixedTime)

	output, err := executeCommand(t, "", "--root", root, "start", "Refactor", "the", "cache", "layer")
	require.NoError(t, err)

	assert.Contains(t, output, "Ralph loop activated!")
	assert.Contains(t, output, "unlimited")
	assert.Contains(t, output, "none (runs forever)")
	assert.Contains(t, output, "Working on:")
	assert.Contains(t, output, "Refactor the cache layer")
	assert.NotContains(t, output, "CRITICAL")

	st := readState(t, root)
	require.NotNil(t, st)
	assert.Equal(t, "Refactor the cache layer", st.Prompt)
	assert.Equal(t, 1, st.Iteration)
	assert.Equal(t, testutil.FixedTime, st.StartedAt)
	testutil.AssertIgnoredOnce(t, root, ".ralph-loop/")
}

func TestStartCommand_WithOptions(t *testing.T) {
	root := t.TempDir()

	output, err := executeCommand(t, "", "--root", root, "start", "Fix auth bug",
		"--max-iterations", "10", "--completion-promise", "TESTS PASSING")
	require.NoError(t, err)

	assert.Contains(t, output, "CRITICAL - Completion Promise")
	assert.Contains(t, output, "<promise>TESTS PASSING</promise>")

	st := readState(t, root)
	require.NotNil(t, st)
	assert.Equal(t, 10, st.MaxIterations)
	assert.Equal(t, "TESTS PASSING", st.Promise())
}

func TestStartCommand_ConfigDefaults(t *testing.T) {
	root := t.TempDir()
	testutil.WriteConfigFile(t, root, `state_dir: .loop
defaults:
  max_iterations: 7
  completion_promise: DONE
`)

	_, err := executeCommand(t, "", "--root", root, "start", "x")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, ".loop", "state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"maxIterations": 7`)
	assert.Contains(t, string(data), `"completionPromise": "DONE"`)

	// Explicit flags win over config defaults.
	_, err = executeCommand(t, "", "--root", root, "start", "y", "--force", "--max-iterations", "0")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(root, ".loop", "state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"maxIterations": 0`)
}

func TestStartCommand_RefusesWhenActive(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "", "--root", root, "start", "first")
	require.NoError(t, err)

	_, err = executeCommand(t, "", "--root", root, "start", "second")
	require.Error(t, err)
	assert.ErrorIs(t, err, loop.ErrAlreadyActive)
	assert.Equal(t, "first", readState(t, root).Prompt)

	_, err = executeCommand(t, "", "--root", root, "start", "second", "--force")
	require.NoError(t, err)
	assert.Equal(t, "second", readState(t, root).Prompt)
}

func TestStartCommand_NegativeMaxIterations(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "", "--root", root, "start", "x", "--max-iterations", "-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, loop.ErrNegativeMaxIterations)
	assert.Nil(t, readState(t, root))
}

func TestStartCommand_BlankPrompt(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "", "--root", root, "start", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no prompt provided")
}

func TestStartCommand_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	testutil.WriteConfigFile(t, root, "log_level: loud\n")

	_, err := executeCommand(t, "", "--root", root, "start", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.Contains(t, err.Error(), ".ralphloop.yaml")
	assert.Contains(t, err.Error(), "log_level")
}

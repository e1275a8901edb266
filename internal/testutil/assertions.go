package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/ralphloop/internal/state"
)

// AssertNoState checks that no loop record is persisted.
func AssertNoState(t *testing.T, store *state.Store) {
	t.Helper()
	st, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, st, "expected no loop state")
	assert.False(t, store.Exists(), "expected no state file at %s", store.Path())
}

// AssertIteration checks the persisted iteration counter.
func AssertIteration(t *testing.T, store *state.Store, expected int) {
	t.Helper()
	st, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, st, "expected loop state")
	assert.Equal(t, expected, st.Iteration, "iteration mismatch")
}

// AssertIgnoredOnce checks that the .gitignore under root lists entry exactly once.
func AssertIgnoredOnce(t *testing.T, root, entry string) {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, state.DefaultIgnoreFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), entry), "expected %q once in ignore file", entry)
}

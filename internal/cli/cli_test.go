package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/ralphloop/internal/state"
	"github.com/thruflo/ralphloop/internal/testutil"
)

// resetFlags restores every flag to its default between command runs,
// since cobra keeps flag values on the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func useFixedClock(t *testing.T, now time.Time) {
	t.Helper()
	old := clock
	clock = testutil.FixedClock(now)
	t.Cleanup(func() { clock = old })
}

func readState(t *testing.T, root string) *state.LoopState {
	t.Helper()
	st, err := state.NewStore(root, "").Read()
	require.NoError(t, err)
	return st
}

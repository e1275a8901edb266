package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the active Ralph loop",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Read first: the record is gone once cancelled.
	st := e.ctrl.GetState()

	cancelled, err := e.ctrl.Cancel()
	if err != nil {
		return err
	}

	switch {
	case !cancelled:
		fmt.Fprintln(out, "No active Ralph loop to cancel.")
	case st == nil:
		fmt.Fprintln(out, "Removed unreadable Ralph loop state.")
	default:
		fmt.Fprintf(out, "%s after %d iteration(s).\n", doneStyle.Render("Ralph loop cancelled"), st.Iteration)
	}
	return nil
}

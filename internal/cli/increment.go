package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/ralphloop/internal/loop"
)

var incrementCmd = &cobra.Command{
	Use:   "increment",
	Short: "Increment the iteration counter",
	Long: `Adds one to the iteration counter of the active loop. The ceiling is not
checked; 'next' checks it before incrementing.`,
	Args: cobra.NoArgs,
	RunE: runIncrement,
}

func init() {
	rootCmd.AddCommand(incrementCmd)
}

func runIncrement(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := e.ctrl.IncrementIteration(); err != nil {
		return err
	}

	st := e.ctrl.GetState()
	if st == nil {
		fmt.Fprintln(out, "No active Ralph loop.")
		return nil
	}
	fmt.Fprintf(out, "Iteration: %s\n", loop.IterationLabel(st))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next [response...]",
	Short: "Finish an iteration with the agent's response",
	Long: `Evaluates the agent's latest response and moves the loop on.

If the response carries the completion promise, or the iteration ceiling has
been reached, the loop ends and its state is removed. Otherwise the iteration
counter is incremented.

The response is taken from the arguments, or read from stdin when no
arguments (or a single "-") are given.

Example:
  claude -p "$(cat PROMPT.md)" | ralphloop next -`,
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	response, err := readResponse(cmd, args)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	outcome, err := e.ctrl.Advance(response)
	if err != nil {
		return err
	}

	switch {
	case outcome.Finished:
		fmt.Fprintf(out, "%s %s (after %d iteration(s))\n",
			doneStyle.Render("Loop completed:"), outcome.Reason, outcome.Iteration)
	case outcome.Continue:
		fmt.Fprintf(out, "Loop continues to iteration %d\n", outcome.Iteration)
	default:
		fmt.Fprintln(out, "No active Ralph loop.")
	}
	return nil
}

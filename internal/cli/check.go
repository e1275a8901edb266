package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkExitCode bool

var checkCmd = &cobra.Command{
	Use:   "check [response...]",
	Short: "Report whether the loop should continue, without changing it",
	Long: `Evaluates a response against the active loop and prints the decision.
Nothing is modified; use 'next' to act on it.

With --exit-code the command exits with status 1 when the loop should stop,
so scripts can branch on it.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkExitCode, "exit-code", false, "exit with status 1 when the loop should stop")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	response, err := readResponse(cmd, args)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	decision := e.ctrl.ShouldContinue(response)

	verdict := "continue"
	if !decision.Continue {
		verdict = "stop"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verdict, decision.Reason)

	if checkExitCode && !decision.Continue {
		return &ExitError{Code: 1}
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/ralphloop/internal/loop"
)

var (
	startMaxIterations int
	startPromise       string
	startForce         bool
)

var startCmd = &cobra.Command{
	Use:   "start <prompt...>",
	Short: "Start a Ralph loop",
	Long: `Start a Ralph loop for the given prompt at iteration 1.

The loop state is written to .ralph-loop/state.json and the directory is added
to .gitignore. Only one loop can run per project; cancel the current one first
or pass --force to replace it.

Examples:
  ralphloop start Refactor the cache layer
  ralphloop start Add tests --max-iterations 20
  ralphloop start Fix auth bug --completion-promise "TESTS PASSING"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStart,
}

func init() {
	startCmd.Flags().IntVar(&startMaxIterations, "max-iterations", 0, "maximum iterations before auto-stop (0 = unlimited)")
	startCmd.Flags().StringVar(&startPromise, "completion-promise", "", "phrase that signals completion inside <promise> tags")
	startCmd.Flags().BoolVar(&startForce, "force", false, "replace an active loop")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return fmt.Errorf("no prompt provided")
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	opts := loop.Options{
		MaxIterations:     e.cfg.Defaults.MaxIterations,
		CompletionPromise: e.cfg.Defaults.CompletionPromise,
	}
	if cmd.Flags().Changed("max-iterations") {
		opts.MaxIterations = startMaxIterations
	}
	if cmd.Flags().Changed("completion-promise") {
		opts.CompletionPromise = startPromise
	}

	if !startForce && e.ctrl.IsActive() {
		return fmt.Errorf("%w (use 'ralphloop cancel' to stop it first, or --force)", loop.ErrAlreadyActive)
	}

	if err := e.ctrl.Start(prompt, opts); err != nil {
		return err
	}

	st := e.ctrl.GetState()
	if st == nil {
		return fmt.Errorf("loop state missing after start: %s", e.ctrl.Store().Path())
	}

	renderStarted(cmd.OutOrStdout(), st)
	return nil
}

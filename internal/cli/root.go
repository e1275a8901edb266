package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ralphloop",
	Short: "Iteration control for Ralph Wiggum loops",
	Long: `ralphloop tracks a Ralph Wiggum loop for a project: the same prompt is fed
to an agent again and again, and the agent sees its previous work in the files
and git history rather than in its own output.

ralphloop keeps the loop state (iteration counter, optional iteration ceiling,
optional completion promise) in .ralph-loop/state.json so it survives between
invocations. It never runs the agent itself; the host calls 'next' with each
response and acts on the answer.

To signal completion, the agent outputs a promise tag:

  <promise>TASK COMPLETE</promise>

Only output the promise when the statement is completely and unequivocally
true. Do not output false promises to escape the loop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("ralphloop version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "project root (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

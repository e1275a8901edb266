package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	statusWatch    bool
	statusInterval time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Ralph loop status",
	Long: `Shows the iteration count, duration, completion promise and prompt of the
active loop.

With --watch, prints a one-line status whenever it changes until interrupted.
Changes are picked up from file system events and from polling every
status.poll_interval (2s by default).`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "keep printing status changes")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", 0, "poll interval for --watch (overrides config)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !statusWatch {
		renderStatus(out, e.ctrl.GetState(), clock())
		return nil
	}

	interval := e.cfg.Status.PollInterval
	if statusInterval > 0 {
		interval = statusInterval
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchStatus(ctx, e, interval, func(line string) {
		fmt.Fprintln(out, line)
	})
}

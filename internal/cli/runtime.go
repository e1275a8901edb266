package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/thruflo/ralphloop/internal/config"
	"github.com/thruflo/ralphloop/internal/logging"
	"github.com/thruflo/ralphloop/internal/loop"
)

// clock is the time source for new loops and status output.
// It can be overridden in tests.
var clock = time.Now

// env bundles what every command needs for one invocation.
type env struct {
	root string
	cfg  *config.Config
	log  *logging.Logger
	ctrl *loop.Controller
}

// ExitError carries a process exit status without an error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func resolveRoot() (string, error) {
	root := rootDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	return abs, nil
}

func loadEnv() (*env, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		if config.IsValidationError(err) {
			return nil, fmt.Errorf("failed to load config: %s: %w", config.Path(root), err)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	levelName := cfg.LogLevel
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logging.SetLevel(level)

	logger := logging.With("invocation", invocationID())
	ctrl := loop.NewController(root,
		loop.WithStateDir(cfg.StateDir),
		loop.WithIgnoreFile(cfg.IgnoreFile),
		loop.WithLogger(logger),
		loop.WithClock(clock),
	)

	return &env{root: root, cfg: cfg, log: logger, ctrl: ctrl}, nil
}

// invocationID tags log lines from one process so separate invocations
// against the same root can be told apart.
func invocationID() string {
	return uuid.NewString()[:8]
}

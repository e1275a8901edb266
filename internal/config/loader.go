package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thruflo/ralphloop/internal/logging"
	"github.com/thruflo/ralphloop/internal/state"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// FileName is the config file looked up under the project root.
const FileName = ".ralphloop.yaml"

// Default values for Config.
const (
	DefaultLogLevel     = "warn"
	DefaultPollInterval = 2 * time.Second
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		StateDir:   state.DefaultDirName,
		IgnoreFile: state.DefaultIgnoreFile,
		LogLevel:   DefaultLogLevel,
		Status: Status{
			PollInterval: DefaultPollInterval,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the config file path for root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// LoadConfig reads and parses .ralphloop.yaml from root.
// If the file doesn't exist, returns default config.
// Fields missing from the file keep their defaults.
func LoadConfig(root string) (*Config, error) {
	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	dir := cfg.StateDir
	if strings.TrimSpace(dir) == "" {
		return ValidationError{Field: "state_dir", Message: "required field is empty"}
	}
	if dir == "." || dir == ".." || strings.ContainsAny(dir, `/\`) {
		return ValidationError{Field: "state_dir", Message: "must be a single directory name"}
	}
	if strings.TrimSpace(cfg.IgnoreFile) == "" {
		return ValidationError{Field: "ignore_file", Message: "required field is empty"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}
	if cfg.Defaults.MaxIterations < 0 {
		return ValidationError{Field: "defaults.max_iterations", Message: "must not be negative"}
	}
	if cfg.Status.PollInterval <= 0 {
		return ValidationError{Field: "status.poll_interval", Message: "must be positive"}
	}
	return nil
}

// WriteDefault writes a commented default config file to root.
// It refuses to overwrite an existing file unless force is set.
func WriteDefault(root string, force bool) error {
	path := Path(root)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const defaultConfigYAML = `# ralphloop configuration

# Directory under the project root that holds state.json while a loop runs
state_dir: .ralph-loop

# Ignore file that receives the state directory entry on start
ignore_file: .gitignore

# debug, info, warn or error
log_level: warn

defaults:
  # Iteration ceiling used when start omits --max-iterations (0 = unbounded)
  max_iterations: 0

  # Completion promise used when start omits --completion-promise
  completion_promise: ""

status:
  # How often status --watch re-reads the loop state
  poll_interval: 2s
`

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

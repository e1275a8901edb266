package config

import "time"

// Config represents the <root>/.ralphloop.yaml file.
type Config struct {
	StateDir   string   `yaml:"state_dir"`
	IgnoreFile string   `yaml:"ignore_file"`
	LogLevel   string   `yaml:"log_level"`
	Defaults   Defaults `yaml:"defaults"`
	Status     Status   `yaml:"status"`
}

// Defaults are applied by `start` when the corresponding flag is omitted.
type Defaults struct {
	MaxIterations     int    `yaml:"max_iterations"`
	CompletionPromise string `yaml:"completion_promise"`
}

// Status configures the status command.
type Status struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

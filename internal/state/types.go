package state

import (
	"fmt"
	"time"
)

// LoopState is the single persisted record describing the current loop.
// A record only ever exists for an active loop; ending a loop deletes it.
type LoopState struct {
	Active            bool      `json:"active"`
	Iteration         int       `json:"iteration"`
	MaxIterations     int       `json:"maxIterations"`
	CompletionPromise *string   `json:"completionPromise"`
	StartedAt         time.Time `json:"startedAt"`
	Prompt            string    `json:"prompt"`
}

// Promise returns the completion phrase, or "" when none is configured.
func (s *LoopState) Promise() string {
	if s == nil || s.CompletionPromise == nil {
		return ""
	}
	return *s.CompletionPromise
}

// Bounded reports whether the loop has an iteration ceiling.
func (s *LoopState) Bounded() bool {
	return s.MaxIterations > 0
}

// validate rejects records whose shape does not describe a loop.
func (s *LoopState) validate() error {
	if s.Iteration < 1 {
		return fmt.Errorf("iteration must be at least 1, got %d", s.Iteration)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("maxIterations must not be negative, got %d", s.MaxIterations)
	}
	if s.StartedAt.IsZero() {
		return fmt.Errorf("startedAt is missing")
	}
	return nil
}

// CorruptStateError describes a state file that exists but cannot be used.
// Store.Read logs it and reports no state instead of returning it.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state file %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Default locations under the project root.
const (
	DefaultDirName    = ".ralph-loop"
	DefaultIgnoreFile = ".gitignore"
	StateFileName     = "state.json"
)

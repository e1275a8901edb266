package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/thruflo/ralphloop/internal/logging"
	"github.com/thruflo/ralphloop/internal/state"
)

// Reason explains a continuation decision.
type Reason int

const (
	ReasonUnknown           Reason = iota
	ReasonNoActiveLoop             // No record, or the record is inactive
	ReasonPromiseDetected          // Response carried the completion promise
	ReasonMaxIterations            // Iteration ceiling reached
	ReasonContinue                 // Nothing stops the loop
)

// String returns the human-readable reason reported to hosts.
func (r Reason) String() string {
	switch r {
	case ReasonNoActiveLoop:
		return "No active loop"
	case ReasonPromiseDetected:
		return "Completion promise detected"
	case ReasonMaxIterations:
		return "Max iterations reached"
	case ReasonContinue:
		return "Loop continues"
	default:
		return "unknown"
	}
}

// Decision is the result of ShouldContinue.
type Decision struct {
	Continue bool
	Reason   Reason
}

// Outcome is the result of Advance.
// Iteration is the new count when the loop continues, or the final count
// when it finished.
type Outcome struct {
	Decision
	Iteration int
	Finished  bool
}

// Options configure a new loop.
type Options struct {
	MaxIterations     int    // 0 means unbounded
	CompletionPromise string // empty means no promise
}

// PreconditionError reports a controller that cannot act at all.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

var (
	// ErrNoRoot is returned by Start when the controller has no root directory.
	ErrNoRoot = &PreconditionError{Message: "no root directory configured"}

	// ErrAlreadyActive is returned by hosts that refuse to replace a running loop.
	// Start itself overwrites.
	ErrAlreadyActive = errors.New("a loop is already active")

	// ErrNegativeMaxIterations is returned by Start for a negative ceiling.
	ErrNegativeMaxIterations = errors.New("max iterations must not be negative")
)

// Controller owns the loop record for a single project root.
type Controller struct {
	root       string
	dirName    string
	ignoreFile string
	store      *state.Store
	log        *logging.Logger
	now        func() time.Time
}

// Option customizes a Controller.
type Option func(*Controller)

// WithStateDir sets the state directory name under the root.
func WithStateDir(name string) Option {
	return func(c *Controller) { c.dirName = name }
}

// WithIgnoreFile sets the ignore file updated on Start.
func WithIgnoreFile(name string) Option {
	return func(c *Controller) { c.ignoreFile = name }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock sets the time source used for startedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a Controller for root. An empty root yields a
// controller that reports no loop and refuses to start one.
func NewController(root string, opts ...Option) *Controller {
	c := &Controller{
		root:       root,
		dirName:    state.DefaultDirName,
		ignoreFile: state.DefaultIgnoreFile,
		log:        logging.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.With("root", root)
	if root != "" {
		c.store = state.NewStore(root, c.dirName)
		c.store.SetLogger(c.log)
	}
	return c
}

// Store returns the underlying store, or nil when no root is configured.
func (c *Controller) Store() *state.Store {
	return c.store
}

// Start records a new active loop at iteration 1 and makes sure the state
// directory is ignored by version control. An existing loop is replaced.
func (c *Controller) Start(prompt string, opts Options) error {
	if c.store == nil {
		return ErrNoRoot
	}
	if opts.MaxIterations < 0 {
		return ErrNegativeMaxIterations
	}

	st := &state.LoopState{
		Active:        true,
		Iteration:     1,
		MaxIterations: opts.MaxIterations,
		StartedAt:     c.now().UTC(),
		Prompt:        prompt,
	}
	if opts.CompletionPromise != "" {
		promise := opts.CompletionPromise
		st.CompletionPromise = &promise
	}

	if err := c.store.Write(st); err != nil {
		return fmt.Errorf("failed to start loop: %w", err)
	}

	if err := state.EnsureIgnored(c.root, c.store.DirName(), c.ignoreFile); err != nil {
		c.log.Warn("failed to update ignore file", "file", c.ignoreFile, "error", err)
	}

	c.log.Info("loop started", "max_iterations", st.MaxIterations, "promise", st.Promise())
	return nil
}

// Cancel deletes the loop record. It returns false when there was none.
// Callers that want to report the final iteration must read it first.
func (c *Controller) Cancel() (bool, error) {
	if c.store == nil {
		return false, nil
	}
	removed, err := c.store.Delete()
	if err != nil {
		return false, fmt.Errorf("failed to cancel loop: %w", err)
	}
	if removed {
		c.log.Info("loop cancelled")
	}
	return removed, nil
}

// GetState returns the current record, or nil when there is none. A record
// that cannot be read counts as none; the failure is logged.
func (c *Controller) GetState() *state.LoopState {
	if c.store == nil {
		return nil
	}
	st, err := c.store.Read()
	if err != nil {
		c.log.Warn("treating unreadable state as no loop", "error", err)
		return nil
	}
	return st
}

// IsActive reports whether a record exists and is marked active.
func (c *Controller) IsActive() bool {
	st := c.GetState()
	return st != nil && st.Active
}

// IncrementIteration bumps the iteration counter. It does nothing without a
// record and does not check the ceiling; call ShouldContinue first.
func (c *Controller) IncrementIteration() error {
	st := c.GetState()
	if st == nil {
		return nil
	}
	_, err := c.bump(st)
	return err
}

func (c *Controller) bump(st *state.LoopState) (int, error) {
	st.Iteration++
	if err := c.store.Write(st); err != nil {
		return 0, fmt.Errorf("failed to increment iteration: %w", err)
	}
	c.log.Debug("iteration advanced", "iteration", st.Iteration)
	return st.Iteration, nil
}

// ShouldContinue evaluates whether another iteration should run after the
// given response. It has no side effects.
func (c *Controller) ShouldContinue(response string) Decision {
	return Evaluate(c.GetState(), response)
}

// Evaluate applies the continuation rules to a record. The promise check
// runs before the ceiling check, so a promise on the last allowed iteration
// is still reported as completion.
func Evaluate(st *state.LoopState, response string) Decision {
	if st == nil || !st.Active {
		return Decision{Continue: false, Reason: ReasonNoActiveLoop}
	}
	if promise := st.Promise(); promise != "" && DetectPromise(response, promise) {
		return Decision{Continue: false, Reason: ReasonPromiseDetected}
	}
	if st.Bounded() && st.Iteration >= st.MaxIterations {
		return Decision{Continue: false, Reason: ReasonMaxIterations}
	}
	return Decision{Continue: true, Reason: ReasonContinue}
}

// Advance runs one host step: it evaluates the response, then either
// increments the counter or ends the loop.
func (c *Controller) Advance(response string) (Outcome, error) {
	st := c.GetState()
	decision := Evaluate(st, response)
	if decision.Reason == ReasonNoActiveLoop {
		return Outcome{Decision: decision}, nil
	}

	if !decision.Continue {
		if _, err := c.Cancel(); err != nil {
			return Outcome{}, err
		}
		c.log.Info("loop finished", "reason", decision.Reason.String(), "iteration", st.Iteration)
		return Outcome{Decision: decision, Iteration: st.Iteration, Finished: true}, nil
	}

	next, err := c.bump(st)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Decision: decision, Iteration: next}, nil
}

package testutil

import (
	"time"

	"github.com/thruflo/ralphloop/internal/state"
)

// FixedTime is the start time used by fixtures.
var FixedTime = time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SamplePrompt is the task text used by fixtures.
const SamplePrompt = "Fix token refresh logic"

// SamplePromise is the completion phrase used by fixtures.
const SamplePromise = "FIXED"

// SampleState returns an active bounded loop on its second iteration.
// Returns a new value each time to prevent test interference.
func SampleState() *state.LoopState {
	promise := SamplePromise
	return &state.LoopState{
		Active:            true,
		Iteration:         2,
		MaxIterations:     5,
		CompletionPromise: &promise,
		StartedAt:         FixedTime,
		Prompt:            SamplePrompt,
	}
}

// SampleStateUnbounded returns an active loop with no ceiling and no promise.
func SampleStateUnbounded() *state.LoopState {
	return &state.LoopState{
		Active:    true,
		Iteration: 7,
		StartedAt: FixedTime,
		Prompt:    SamplePrompt,
	}
}

// SampleStateAtCeiling returns an active loop whose iteration equals its ceiling.
func SampleStateAtCeiling() *state.LoopState {
	st := SampleStateUnbounded()
	st.Iteration = 3
	st.MaxIterations = 3
	return st
}

// SampleResponseWithPromise returns response text that carries phrase in a
// promise tag surrounded by other output.
func SampleResponseWithPromise(phrase string) string {
	return "Ran the test suite.\nAll 42 tests pass.\n<promise>" + phrase + "</promise>\nDone."
}

package loop

import (
	"strconv"
	"time"

	"github.com/thruflo/ralphloop/internal/state"
)

// Remaining returns how many iterations are left before the ceiling.
// The second result is false for unbounded loops.
func Remaining(st *state.LoopState) (int, bool) {
	if st == nil || !st.Bounded() {
		return 0, false
	}
	left := st.MaxIterations - st.Iteration
	if left < 0 {
		left = 0
	}
	return left, true
}

// Elapsed returns the time since the loop started.
func Elapsed(st *state.LoopState, now time.Time) time.Duration {
	if st == nil || st.StartedAt.IsZero() {
		return 0
	}
	d := now.Sub(st.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// IterationLabel renders the counter as "3 / 5", or "3" when unbounded.
func IterationLabel(st *state.LoopState) string {
	if st == nil {
		return "0"
	}
	label := strconv.Itoa(st.Iteration)
	if st.Bounded() {
		label += " / " + strconv.Itoa(st.MaxIterations)
	}
	return label
}

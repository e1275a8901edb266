package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/thruflo/ralphloop/internal/loop"
	"github.com/thruflo/ralphloop/internal/state"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

const rule = "==========================================================="

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", label+":")), value)
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func renderStarted(w io.Writer, st *state.LoopState) {
	fmt.Fprintln(w, activeStyle.Render("Ralph loop activated!"))
	fmt.Fprintln(w)

	maxLabel := "unlimited"
	if st.Bounded() {
		maxLabel = fmt.Sprintf("%d", st.MaxIterations)
	}
	printField(w, "Iteration", fmt.Sprintf("%d", st.Iteration))
	printField(w, "Max iterations", maxLabel)
	printField(w, "Completion promise", orDefault(st.Promise(), "none (runs forever)"))
	fmt.Fprintln(w)

	if promise := st.Promise(); promise != "" {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, warnStyle.Render("CRITICAL - Completion Promise"))
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "To complete this loop, output:")
		fmt.Fprintf(w, "  %s\n", loop.PromiseTag(promise))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Requirements:")
		fmt.Fprintln(w, "  - The statement MUST be completely and unequivocally TRUE")
		fmt.Fprintln(w, "  - Do NOT output false statements to exit the loop")
		fmt.Fprintln(w, "  - Trust the process: the loop continues until genuinely complete")
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s %s\n", headingStyle.Render("Working on:"), st.Prompt)
}

func renderStatus(w io.Writer, st *state.LoopState, now time.Time) {
	if st == nil || !st.Active {
		fmt.Fprintln(w, "No active Ralph loop.")
		return
	}

	fmt.Fprintln(w, headingStyle.Render("Ralph Loop Status"))
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	printField(w, "Status", activeStyle.Render("Active"))
	printField(w, "Iteration", loop.IterationLabel(st))
	if left, ok := loop.Remaining(st); ok {
		printField(w, "Remaining", fmt.Sprintf("%d", left))
	}
	printField(w, "Duration", formatDuration(loop.Elapsed(st, now)))
	printField(w, "Started", formatTime(st.StartedAt))
	printField(w, "Completion promise", orDefault(st.Promise(), "None"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Prompt"))
	fmt.Fprintln(w, "------")
	fmt.Fprintln(w, st.Prompt)
}

// statusLine is the one-line form used by status --watch.
func statusLine(st *state.LoopState) string {
	if st == nil || !st.Active {
		return "No active Ralph loop"
	}
	return "Ralph Loop: iteration " + loop.IterationLabel(st)
}

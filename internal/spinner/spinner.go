// Package spinner shows transient progress while the fetch is in flight.
package spinner

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ShouldShow returns true if the spinner should be displayed.
// The spinner is hidden for quiet mode, JSON output, or non-TTY (piped) output.
func ShouldShow(quiet, json, nonTTY bool) bool {
	return !quiet && !json && !nonTTY
}

// Run displays a spinner with the given title while fn executes.
// It blocks until fn returns.
func Run(title string, fn func()) error {
	p := tea.NewProgram(newModel(title))

	go func() {
		fn()
		p.Send(doneMsg{})
	}()

	_, err := p.Run()
	return err
}

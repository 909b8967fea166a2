// ABOUTME: TUI initialization and progress reporting
// ABOUTME: Runs work beside a bubbletea program and forwards its progress
package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the view is closed before work finishes
var ErrInterrupted = errors.New("interrupted")

// Reporter forwards step events and log output to the program
type Reporter struct {
	send func(tea.Msg)
}

// NewReporter creates a reporter that delivers messages through send
func NewReporter(send func(tea.Msg)) *Reporter {
	return &Reporter{send: send}
}

// StepStarted reports that step i began
func (r *Reporter) StepStarted(i int, name string) {
	r.send(StepStartedMsg{Index: i})
}

// StepFinished reports that step i ended
func (r *Reporter) StepFinished(i int, name string, err error) {
	r.send(StepDoneMsg{Index: i, Err: err})
}

// Write sends each non-empty line of p as a LogMsg
func (r *Reporter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			r.send(LogMsg{Line: line})
		}
	}
	return len(p), nil
}

// Run shows the progress view while work runs in its own goroutine.
// It returns work's error, or ErrInterrupted if the user quit early.
func Run(steps []string, work func(*Reporter) error, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(steps), opts...)
	r := NewReporter(p.Send)

	go func() {
		err := work(r)
		p.Send(FinishedMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if !m.Finished() {
		return ErrInterrupted
	}
	return m.Err()
}

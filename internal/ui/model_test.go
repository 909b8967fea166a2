// ABOUTME: Tests for TUI model and progress reporting
// ABOUTME: Tests step transitions, log buffering and the reporter writer
package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testSteps = []string{"images", "vectors", "convert", "sounds"}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNewModel(t *testing.T) {
	model := NewModel(testSteps)

	if len(model.states) != len(testSteps) {
		t.Fatalf("expected %d states, got %d", len(testSteps), len(model.states))
	}
	for i, s := range model.states {
		if s != StepPending {
			t.Errorf("step %d: expected pending, got %v", i, s)
		}
	}
	if model.finished {
		t.Error("expected finished to be false initially")
	}
}

func TestStepTransitions(t *testing.T) {
	model := NewModel(testSteps)

	model, _ = update(model, StepStartedMsg{Index: 0})
	if model.states[0] != StepRunning {
		t.Errorf("expected running, got %v", model.states[0])
	}

	model, _ = update(model, StepDoneMsg{Index: 0})
	if model.states[0] != StepDone {
		t.Errorf("expected done, got %v", model.states[0])
	}

	cause := errors.New("disk full")
	model, _ = update(model, StepDoneMsg{Index: 1, Err: cause})
	if model.states[1] != StepFailed {
		t.Errorf("expected failed, got %v", model.states[1])
	}
	if !errors.Is(model.errs[1], cause) {
		t.Errorf("expected step error to be kept, got %v", model.errs[1])
	}
}

func TestStepIndexOutOfRange(t *testing.T) {
	model := NewModel(testSteps)

	model, _ = update(model, StepStartedMsg{Index: 10})
	model, _ = update(model, StepDoneMsg{Index: -1})

	for i, s := range model.states {
		if s != StepPending {
			t.Errorf("step %d changed to %v", i, s)
		}
	}
}

func TestLogLinesAreBounded(t *testing.T) {
	model := NewModel(testSteps)

	for i := 0; i < maxLines+5; i++ {
		model, _ = update(model, LogMsg{Line: fmt.Sprintf("line %d", i)})
	}

	if len(model.lines) != maxLines {
		t.Fatalf("expected %d lines, got %d", maxLines, len(model.lines))
	}
	if model.lines[0] != "line 5" {
		t.Errorf("expected oldest kept line 'line 5', got %q", model.lines[0])
	}
	if model.lines[maxLines-1] != fmt.Sprintf("line %d", maxLines+4) {
		t.Errorf("unexpected newest line %q", model.lines[maxLines-1])
	}
}

func TestFinishedQuits(t *testing.T) {
	model := NewModel(testSteps)

	cause := errors.New("boom")
	model, cmd := update(model, FinishedMsg{Err: cause})
	if !model.Finished() {
		t.Error("expected finished after FinishedMsg")
	}
	if !errors.Is(model.Err(), cause) {
		t.Errorf("expected error to be kept, got %v", model.Err())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQuitKey(t *testing.T) {
	model := NewModel(testSteps)

	model, cmd := update(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !model.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if model.Finished() {
		t.Error("quitting must not mark the run finished")
	}
}

func TestViewShowsSteps(t *testing.T) {
	model := NewModel(testSteps)
	model, _ = update(model, StepDoneMsg{Index: 0})
	model, _ = update(model, StepDoneMsg{Index: 2, Err: errors.New("bad svg")})
	model, _ = update(model, LogMsg{Line: "Created resources/images/x.png"})

	view := model.View()
	for _, want := range append(testSteps, "bad svg", "Created resources/images/x.png") {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewFinished(t *testing.T) {
	model := NewModel(testSteps)
	model, _ = update(model, FinishedMsg{})

	if !strings.Contains(model.View(), "All assets generated") {
		t.Error("expected completion line")
	}

	failed := NewModel(testSteps)
	failed, _ = update(failed, FinishedMsg{Err: errors.New("x")})
	if !strings.Contains(failed.View(), "Asset generation failed") {
		t.Error("expected failure line")
	}
}

func TestReporter(t *testing.T) {
	var msgs []tea.Msg
	r := NewReporter(func(msg tea.Msg) { msgs = append(msgs, msg) })

	r.StepStarted(1, "vectors")
	n, err := r.Write([]byte("Created a.svg\nCreated b.svg\n"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != len("Created a.svg\nCreated b.svg\n") {
		t.Errorf("unexpected byte count %d", n)
	}
	r.StepFinished(1, "vectors", nil)

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msg, ok := msgs[0].(StepStartedMsg); !ok || msg.Index != 1 {
		t.Errorf("unexpected first message %#v", msgs[0])
	}
	if msg, ok := msgs[2].(LogMsg); !ok || msg.Line != "Created b.svg" {
		t.Errorf("unexpected log message %#v", msgs[2])
	}
	if msg, ok := msgs[3].(StepDoneMsg); !ok || msg.Index != 1 || msg.Err != nil {
		t.Errorf("unexpected last message %#v", msgs[3])
	}
}

func TestStepStateString(t *testing.T) {
	tests := []struct {
		state    StepState
		expected string
	}{
		{StepPending, "pending"},
		{StepRunning, "running"},
		{StepDone, "done"},
		{StepFailed, "failed"},
		{StepState(9), "state(9)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long line", 10, "this is..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.length); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.expected)
		}
	}
}

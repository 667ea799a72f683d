package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
)

// sender is the subset of *tea.Program the reporter needs.
type sender interface {
	Send(tea.Msg)
}

// TeaReporter translates engine lifecycle events into Bubbletea messages.
// The orchestrator runs on its own goroutine, so events cross into the
// program through Send rather than touching the terminal directly.
type TeaReporter struct {
	program sender
}

// NewTeaReporter creates a reporter that feeds the given program.
func NewTeaReporter(program sender) *TeaReporter {
	return &TeaReporter{program: program}
}

var _ engine.Reporter = (*TeaReporter)(nil)

// RunStarted is a no-op; the model already knows the step list.
func (r *TeaReporter) RunStarted(total int) {}

// StepStarted marks the step as running.
func (r *TeaReporter) StepStarted(step engine.Step, position, total int) {
	r.program.Send(StepStartMsg{Name: step.Name, Position: position})
}

// StepFinished records the step's terminal result.
func (r *TeaReporter) StepFinished(result model.StepResult, completed, total int) {
	r.program.Send(StepCompleteMsg{Result: result, Completed: completed})
}

// RunFinished signals the program to quit with the run's outcome.
func (r *TeaReporter) RunFinished(run *engine.Run) {
	r.program.Send(RunCompleteMsg{Outcome: run.Outcome})
}

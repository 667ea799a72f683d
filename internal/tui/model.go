package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
)

// StepStartMsg indicates a step has started executing.
type StepStartMsg struct {
	Name     string
	Position int
}

// StepCompleteMsg reports that a step reached a terminal status. Completed is
// the orchestrator's own count of satisfied steps, carried here so the
// progress bar never drifts from the engine's idea of progress.
type StepCompleteMsg struct {
	Result    model.StepResult
	Completed int
}

// RunCompleteMsg reports that the whole run finished.
type RunCompleteMsg struct {
	Outcome engine.Outcome
}

type stepView struct {
	name        string
	description string
}

// Model contains the Bubbletea state for the provisioning progress TUI.
type Model struct {
	steps     []stepView
	results   map[string]model.StepResult
	total     int
	completed int
	finished  bool
	cancelled bool
	outcome   engine.Outcome
	spin      spinner.Model
	cancel    context.CancelFunc
}

// NewModel constructs the TUI model for the given step sequence. cancel is
// invoked on Ctrl+C; the program itself only quits once the orchestrator has
// unwound and sent RunCompleteMsg.
func NewModel(steps []engine.Step, cancel context.CancelFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	m := Model{
		steps:   make([]stepView, 0, len(steps)),
		results: make(map[string]model.StepResult, len(steps)),
		total:   len(steps),
		spin:    s,
		cancel:  cancel,
	}
	for _, step := range steps {
		m.steps = append(m.steps, stepView{name: step.Name, description: step.Description})
		m.results[step.Name] = model.StepResult{Step: step.Name, Status: model.StatusPending}
	}
	return m
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// TotalSteps returns the total number of steps tracked by the model.
func (m Model) TotalSteps() int {
	return m.total
}

// CompletedSteps returns the number of satisfied steps.
func (m Model) CompletedSteps() int {
	return m.completed
}

// IsFinished reports whether the run has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Outcome returns the run disposition received with RunCompleteMsg.
func (m Model) Outcome() engine.Outcome {
	return m.outcome
}

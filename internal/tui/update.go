package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mooh971/Go-panel/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case StepStartMsg:
		res := m.results[msg.Name]
		res.Step = msg.Name
		res.Status = model.StatusRunning
		m.results[msg.Name] = res
		return m, nil
	case StepCompleteMsg:
		if msg.Result.Step == "" {
			return m, nil
		}
		m.results[msg.Result.Step] = msg.Result
		m.completed = msg.Completed
		return m, nil
	case RunCompleteMsg:
		m.finished = true
		m.outcome = msg.Outcome
		return m, tea.Quit
	case tea.KeyMsg:
		// Ctrl+C cancels the run context but does not quit; the program
		// exits through RunCompleteMsg once the orchestrator has unwound.
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}

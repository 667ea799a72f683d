package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
	"github.com/mooh971/Go-panel/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("Go-panel setup"))

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	order := make([]components.StepEntry, 0, len(m.steps))
	for _, step := range m.steps {
		order = append(order, components.StepEntry{Name: step.name, Description: step.description})
	}
	entries := components.NewStepList(order, m.results).Entries()
	if len(entries) > 0 {
		sections = append(sections, sectionStyle.Render("Steps"), m.renderStepEntries(entries))
	}

	if notice := m.notice(); notice != "" {
		sections = append(sections, noticeStyle.Render(notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStepEntries(entries []components.StepEntry) string {
	var lines []string
	for _, entry := range entries {
		res := entry.Result
		icon := StatusIcon(res.Status)
		if res.Status == model.StatusRunning {
			icon = m.spin.View()
		}
		line := fmt.Sprintf(" %s %s", icon, entry.Name)
		if res.Status == model.StatusRunning && strings.TrimSpace(entry.Description) != "" {
			line = fmt.Sprintf("%s — %s", line, mutedStyle.Render(entry.Description))
		}
		if strings.TrimSpace(res.Message) != "" {
			line = fmt.Sprintf("%s — %s", line, res.Message)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(10*time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) notice() string {
	if m.cancelled && !m.finished {
		return mutedStyle.Render("Cancelling; waiting for the current step to stop")
	}
	if !m.finished {
		return ""
	}
	switch m.outcome {
	case engine.OutcomeSucceeded:
		return successStyle.Render("All steps complete.")
	case engine.OutcomeFailed:
		return failureStyle.Render("Provisioning failed.")
	default:
		return ""
	}
}

// StatusIcon returns the glyph representing a step status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusSuccess:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusSkipped:
		return skippedStyle.Render("⊘")
	default:
		return pendingStyle.Render("…")
	}
}

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
)

func TestViewRendersBasicLayout(t *testing.T) {
	m := NewModel(testSteps(), nil)
	m.results["install-packages"] = model.StepResult{
		Step:     "install-packages",
		Status:   model.StatusSuccess,
		Message:  "completed",
		Duration: 2 * time.Second,
	}
	m.results["deploy-files"] = model.StepResult{Step: "deploy-files", Status: model.StatusRunning}
	m.completed = 1

	view := m.View()
	require.Contains(t, view, "Go-panel setup")
	require.Contains(t, view, "Progress")
	require.Contains(t, view, "33%")
	require.Contains(t, view, "install-packages")
	require.Contains(t, view, "completed")
	require.Contains(t, view, "deploy-files")
	require.Contains(t, view, "enable-service")
}

func TestViewShowsDescriptionForRunningStep(t *testing.T) {
	m := NewModel(testSteps(), nil)
	m.results["deploy-files"] = model.StepResult{Step: "deploy-files", Status: model.StatusRunning}

	view := m.View()
	require.Contains(t, view, "Deploying application files")
	require.NotContains(t, view, "Installing OS packages")
}

func TestViewShowsCancellingNotice(t *testing.T) {
	m := NewModel(testSteps(), nil)
	m.cancelled = true

	require.Contains(t, m.View(), "Cancelling")
}

func TestViewShowsCompletionNotice(t *testing.T) {
	m := NewModel(testSteps(), nil)
	m.finished = true
	m.outcome = engine.OutcomeSucceeded
	m.completed = 3

	view := m.View()
	require.Contains(t, view, "All steps complete.")
	require.Contains(t, view, "100%")
}

func TestViewShowsFailureNotice(t *testing.T) {
	m := NewModel(testSteps(), nil)
	m.finished = true
	m.outcome = engine.OutcomeFailed
	m.completed = 1

	view := m.View()
	require.Contains(t, view, "Provisioning failed.")
	require.NotContains(t, view, "100%")
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{"success shows checkmark", model.StatusSuccess, "✓"},
		{"running shows hourglass", model.StatusRunning, "⏳"},
		{"failed shows cross", model.StatusFailed, "✗"},
		{"skipped shows circle-slash", model.StatusSkipped, "⊘"},
		{"pending shows ellipsis", model.StatusPending, "…"},
		{"unknown shows ellipsis", "unknown", "…"},
		{"empty shows ellipsis", "", "…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			icon := StatusIcon(tt.status)
			require.Contains(t, icon, tt.expected)
		})
	}
}

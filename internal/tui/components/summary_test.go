package components

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

func TestSummaryViewSuccess(t *testing.T) {
	t.Parallel()

	run := &engine.Run{
		Steps:   make([]engine.Step, 3),
		Outcome: engine.OutcomeSucceeded,
		Results: []model.StepResult{
			{Step: "install-packages", Status: model.StatusSkipped},
			{Step: "deploy-files", Status: model.StatusSuccess},
			{Step: "enable-service", Status: model.StatusSuccess},
		},
		Duration: 90 * time.Second,
	}

	view := NewSummary(SummaryData{
		Run:      run,
		Endpoint: "http://192.168.4.17:8080",
		Unit:     "gopanel",
	}).View()

	require.Contains(t, view, "✓ Provisioning complete")
	require.Contains(t, view, "2 steps run, 1 skipped in 1m30s")
	require.Contains(t, view, "http://192.168.4.17:8080")
	require.Contains(t, view, "systemctl status gopanel")
	require.Contains(t, view, "journalctl -u gopanel -f")
	require.NotContains(t, view, "failed")
}

func TestSummaryViewAborted(t *testing.T) {
	t.Parallel()

	run := &engine.Run{Outcome: engine.OutcomeAborted}
	view := NewSummary(SummaryData{Run: run}).View()

	require.Contains(t, view, "Aborted by user")
	require.NotContains(t, view, "http")
}

func TestSummaryViewFailureShowsHintAndOutputTail(t *testing.T) {
	t.Parallel()

	err := panelerrors.NewStepErrorWithHint(
		"install-docker",
		"Docker install failed; see https://docs.docker.com/engine/install/ for manual steps",
		"fetching packages\nE: unable to locate docker-ce",
		errors.New("run installer: exit status 100"),
	)
	run := &engine.Run{
		Steps:      make([]engine.Step, 10),
		Outcome:    engine.OutcomeFailed,
		FailedStep: "install-docker",
		Err:        err,
		Results: []model.StepResult{
			{Step: "install-packages", Status: model.StatusSuccess},
			{Step: "install-docker", Status: model.StatusFailed},
		},
	}

	view := NewSummary(SummaryData{Run: run}).View()
	require.Contains(t, view, "✗ Provisioning failed at install-docker")
	require.Contains(t, view, "Docker install failed")
	require.Contains(t, view, "unable to locate docker-ce")
	require.Contains(t, view, "1 of 10 steps completed before the failure")
}

func TestSummaryViewFailureWithoutStepError(t *testing.T) {
	t.Parallel()

	run := &engine.Run{
		Steps:      make([]engine.Step, 10),
		Outcome:    engine.OutcomeFailed,
		FailedStep: "install-docker",
		Err:        panelerrors.NewProbeError("command:docker", errors.New("permission denied")),
	}

	view := NewSummary(SummaryData{Run: run}).View()
	require.Contains(t, view, "probe error [command:docker]")
}

func TestSummaryViewNilRun(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewSummary(SummaryData{}).View())
}

func TestOutputTailKeepsLastLines(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 1; i <= 20; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	tail := outputTail(strings.Join(lines, "\n"), 12)
	require.NotContains(t, tail, "line 8\n")
	require.True(t, strings.HasPrefix(tail, "line 9"))
	require.True(t, strings.HasSuffix(tail, "line 20"))
}

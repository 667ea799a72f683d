package components

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mooh971/Go-panel/internal/engine"
	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

// SummaryData aggregates what the closing report needs.
type SummaryData struct {
	Run      *engine.Run
	Endpoint string
	Unit     string
}

// Summary renders the run's closing report.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders exactly one branch: success, failure, or aborted.
func (s Summary) View() string {
	run := s.data.Run
	if run == nil {
		return ""
	}

	switch run.Outcome {
	case engine.OutcomeSucceeded:
		return s.successView()
	case engine.OutcomeAborted:
		return "Aborted by user; nothing was changed."
	case engine.OutcomeFailed:
		return s.failureView()
	default:
		return ""
	}
}

func (s Summary) successView() string {
	run := s.data.Run
	succeeded, skipped, _ := run.Counts()

	lines := []string{
		"✓ Provisioning complete",
		fmt.Sprintf("  %d steps run, %d skipped in %s", succeeded, skipped, run.Duration.Truncate(100*time.Millisecond)),
		"",
		"  Panel:   " + s.data.Endpoint,
		"  Status:  systemctl status " + s.data.Unit,
		"  Logs:    journalctl -u " + s.data.Unit + " -f",
	}
	return strings.Join(lines, "\n")
}

func (s Summary) failureView() string {
	run := s.data.Run
	lines := []string{fmt.Sprintf("✗ Provisioning failed at %s", run.FailedStep)}

	var stepErr *panelerrors.StepError
	switch {
	case errors.As(run.Err, &stepErr):
		if stepErr.Hint != "" {
			lines = append(lines, "  "+stepErr.Hint)
		}
		if tail := outputTail(stepErr.Output, 12); tail != "" {
			lines = append(lines, "", indent(tail, "    "))
		}
	case run.Err != nil:
		lines = append(lines, "  "+run.Err.Error())
	}

	succeeded, skipped, _ := run.Counts()
	lines = append(lines, "", fmt.Sprintf("  %d of %d steps completed before the failure", succeeded+skipped, len(run.Steps)))
	return strings.Join(lines, "\n")
}

// outputTail keeps the last max lines of captured output so a long installer
// log does not swamp the report.
func outputTail(output string, max int) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return ""
	}
	lines := strings.Split(output, "\n")
	if len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	return strings.Join(lines, "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

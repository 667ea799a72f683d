package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
)

// Plain renders run progress as one line per event with no escape sequences.
// It is the reporter for non-interactive runs, where output lands in a pipe
// or a CI log.
type Plain struct {
	out io.Writer
}

// NewPlain creates a plain-text reporter writing to out.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

var _ engine.Reporter = (*Plain)(nil)

func (p *Plain) RunStarted(total int) {
	fmt.Fprintf(p.out, "Provisioning host in %d steps\n", total)
}

func (p *Plain) StepStarted(step engine.Step, position, total int) {
	fmt.Fprintf(p.out, "● [%d/%d] %s\n", position+1, total, step.Description)
}

func (p *Plain) StepFinished(result model.StepResult, completed, total int) {
	pct := engine.Percent(completed, total)
	switch result.Status {
	case model.StatusSkipped:
		fmt.Fprintf(p.out, "⊘ [%3d%%] %s: %s\n", pct, result.Step, result.Message)
	case model.StatusFailed:
		fmt.Fprintf(p.out, "✗ [%3d%%] %s: %s\n", pct, result.Step, result.Message)
	default:
		fmt.Fprintf(p.out, "✓ [%3d%%] %s (%s)\n", pct, result.Step, result.Duration.Truncate(10*time.Millisecond))
	}
}

// RunFinished is a no-op; the command prints the final summary itself.
func (p *Plain) RunFinished(run *engine.Run) {}

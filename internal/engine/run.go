package engine

import (
	"time"

	"github.com/mooh971/Go-panel/internal/model"
)

// Outcome is the disposition of a Run. Succeeded, Failed and Aborted are
// terminal; a Run reaches exactly one of them and is then discarded, never
// persisted.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeRunning
	OutcomeSucceeded
	OutcomeFailed
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeRunning:
		return "running"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Run is one end-to-end execution of the ordered step sequence. Cursor only
// ever moves forward; Results holds one entry per step that reached a
// terminal status, in step order.
type Run struct {
	Steps      []Step
	Cursor     int
	Outcome    Outcome
	Results    []model.StepResult
	FailedStep string
	Err        error
	Started    time.Time
	Duration   time.Duration
}

// NewRun creates a pending Run over the given steps.
func NewRun(steps []Step) *Run {
	return &Run{
		Steps:   steps,
		Outcome: OutcomePending,
		Results: make([]model.StepResult, 0, len(steps)),
	}
}

// Counts tallies terminal step results by status.
func (r *Run) Counts() (succeeded, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case model.StatusSuccess:
			succeeded++
		case model.StatusSkipped:
			skipped++
		case model.StatusFailed:
			failed++
		}
	}
	return succeeded, skipped, failed
}

func (r *Run) fail(step string, err error) {
	r.Outcome = OutcomeFailed
	r.FailedStep = step
	r.Err = err
	r.Duration = time.Since(r.Started)
}

func (r *Run) succeed() {
	r.Outcome = OutcomeSucceeded
	r.Duration = time.Since(r.Started)
}

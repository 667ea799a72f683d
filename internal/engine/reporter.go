package engine

import (
	"github.com/mooh971/Go-panel/internal/model"
)

// Reporter receives run lifecycle events. The active Reporter owns the
// interactive surface for the whole run; no other component writes to it.
//
// completed counts steps that reached success or skipped. A failed step does
// not advance it, so a renderer deriving its percentage from completed can
// never display 100 for a run that did not fully succeed.
type Reporter interface {
	RunStarted(total int)
	StepStarted(step Step, position, total int)
	StepFinished(result model.StepResult, completed, total int)
	RunFinished(run *Run)
}

package model

import (
	"time"
)

// ActionResult contains the result of running a step's command group to
// completion. Failed names the first command that exited non-zero; it is
// empty when the whole group succeeded.
type ActionResult struct {
	// ExitCode is the exit status of the last command that ran.
	ExitCode int

	// Failed is the name of the command that stopped the group, if any.
	Failed string

	// Output is the combined stdout and stderr of every command that ran,
	// in execution order.
	Output string

	// Duration covers the whole group, first spawn to last exit.
	Duration time.Duration
}

// OK reports whether the group ran to completion with a zero exit status.
func (r ActionResult) OK() bool {
	return r.Failed == "" && r.ExitCode == 0
}

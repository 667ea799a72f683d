package engine

import (
	"context"
)

// Command is one shell-level operation inside a step's action. Line runs
// through the shell; Name identifies the operation in diagnostics when it is
// the first in its group to fail.
type Command struct {
	Name string
	Line string
}

// Step is a named unit of provisioning work.
//
// A step's action is either an external command group (Commands) or an
// in-process function (Run); setting both is invalid. A step with neither
// completes immediately, which suits pure bookkeeping slots. Steps are
// immutable once built and communicate only through Context fields, never
// through ambient process state.
type Step struct {
	// Name is the stable identifier used in logs and error messages.
	Name string

	// Description is the operator-facing text shown while the step runs.
	Description string

	// FailureHint describes what broke when the action fails.
	FailureHint string

	// Skip decides at run time whether the action executes. A skipped step
	// still occupies a progress slot and reports SkipText instead of a
	// completion message. A non-nil error means the environment is
	// indeterminate, which fails the run before the action starts.
	Skip func(*Context) (bool, error)

	// SkipText is the message shown when Skip returns true.
	SkipText string

	// Commands builds the step's external command group from the run
	// context at execution time.
	Commands func(*Context) []Command

	// Run is the in-process alternative to Commands, used by decision
	// steps and library-backed work.
	Run func(context.Context, *Context) error

	// Verbose surfaces captured output even when the action succeeds.
	Verbose bool
}

package engine

import (
	"context"

	"github.com/mooh971/Go-panel/internal/model"
)

// ActionHandle tracks one in-flight step action.
type ActionHandle interface {
	// Done is closed when the action has exited, for any reason.
	Done() <-chan struct{}

	// Running reports liveness. The flag is set once, by the worker, when
	// the action exits; the progress renderer polls it between ticks.
	Running() bool

	// Result returns the action outcome. Valid only once Done is closed.
	Result() model.ActionResult
}

// CommandRunner executes step actions as background work so the progress
// renderer can keep drawing while they are in flight. Implementations
// capture all command output; nothing an action prints reaches the terminal
// directly.
type CommandRunner interface {
	// Start runs a command group sequentially, stopping at the first
	// non-zero exit.
	Start(ctx context.Context, commands []Command) ActionHandle

	// StartFunc runs an in-process action under the same handle contract.
	StartFunc(ctx context.Context, fn func(context.Context) error) ActionHandle
}

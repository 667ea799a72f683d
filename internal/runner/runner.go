package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/model"
)

// Exec is the production CommandRunner. Each action runs on its own worker
// goroutine with combined stdout/stderr captured into a buffer, so nothing a
// command prints interleaves with the progress renderer. On success the
// capture is discarded unless the step asked for it; on failure it is
// preserved for the operator.
type Exec struct{}

// New creates an Exec runner.
func New() *Exec {
	return &Exec{}
}

var _ engine.CommandRunner = (*Exec)(nil)

// Handle tracks one in-flight action.
type Handle struct {
	done    chan struct{}
	running atomic.Bool
	result  model.ActionResult
}

// Done is closed when the action has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Running reports whether the action is still in flight. The worker clears
// the flag exactly once, when the action exits.
func (h *Handle) Running() bool {
	return h.running.Load()
}

// Result returns the action outcome. Valid only once Done is closed.
func (h *Handle) Result() model.ActionResult {
	return h.result
}

func newHandle() *Handle {
	h := &Handle{done: make(chan struct{})}
	h.running.Store(true)
	return h
}

func (h *Handle) finish(result model.ActionResult) {
	h.result = result
	h.running.Store(false)
	close(h.done)
}

// Start launches the command group on a worker goroutine. Commands run in
// order through the shell; the first non-zero exit stops the group and names
// the failing command. Cancelling ctx kills the running child.
func (e *Exec) Start(ctx context.Context, commands []engine.Command) engine.ActionHandle {
	h := newHandle()

	go func() {
		start := time.Now()
		var output bytes.Buffer

		shell, shellArgs, err := determineShell()
		if err != nil {
			h.finish(model.ActionResult{
				ExitCode: 1,
				Failed:   firstName(commands),
				Output:   err.Error(),
				Duration: time.Since(start),
			})
			return
		}

		for _, command := range commands {
			args := append(append([]string{}, shellArgs...), command.Line)
			cmd := exec.CommandContext(ctx, shell, args...)
			cmd.Env = os.Environ()
			cmd.Stdout = &output
			cmd.Stderr = &output

			if runErr := cmd.Run(); runErr != nil {
				exitCode := 1
				var exitErr *exec.ExitError
				if errors.As(runErr, &exitErr) {
					exitCode = exitErr.ExitCode()
				} else {
					fmt.Fprintf(&output, "%s: %v\n", command.Name, runErr)
				}

				h.finish(model.ActionResult{
					ExitCode: exitCode,
					Failed:   command.Name,
					Output:   strings.TrimSpace(output.String()),
					Duration: time.Since(start),
				})
				return
			}
		}

		h.finish(model.ActionResult{
			ExitCode: 0,
			Output:   strings.TrimSpace(output.String()),
			Duration: time.Since(start),
		})
	}()

	return h
}

// StartFunc runs an in-process action under the same handle contract, so
// decision steps and library-backed work report like commands do. A non-nil
// error becomes the captured output with exit status 1.
func (e *Exec) StartFunc(ctx context.Context, fn func(context.Context) error) engine.ActionHandle {
	h := newHandle()

	go func() {
		start := time.Now()
		if err := fn(ctx); err != nil {
			h.finish(model.ActionResult{
				ExitCode: 1,
				Output:   err.Error(),
				Duration: time.Since(start),
			})
			return
		}
		h.finish(model.ActionResult{ExitCode: 0, Duration: time.Since(start)})
	}()

	return h
}

func determineShell() (string, []string, error) {
	if path, err := exec.LookPath("bash"); err == nil {
		return path, []string{"-c"}, nil
	}

	if path, err := exec.LookPath("sh"); err == nil {
		return path, []string{"-c"}, nil
	}

	return "", nil, fmt.Errorf("no suitable shell found")
}

func firstName(commands []engine.Command) string {
	if len(commands) == 0 {
		return ""
	}
	return commands[0].Name
}

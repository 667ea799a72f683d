package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mooh971/Go-panel/internal/logger"
	"github.com/mooh971/Go-panel/internal/model"
	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

// Orchestrator drives the ordered step list one at a time and enforces
// fail-fast termination: the first failing step ends the run and nothing
// after it executes. There is no retry and no rollback; whatever earlier
// steps changed on the host stays in place.
type Orchestrator struct {
	runner   CommandRunner
	reporter Reporter
	logger   *logger.Logger
}

// NewOrchestrator creates an Orchestrator over the given collaborators.
func NewOrchestrator(runner CommandRunner, reporter Reporter, log *logger.Logger) *Orchestrator {
	return &Orchestrator{runner: runner, reporter: reporter, logger: log}
}

// Execute runs every step in order and returns the finished Run. Callers
// invoke it only after the operator has confirmed the run; declining the
// gate means Execute is never reached.
func (o *Orchestrator) Execute(ctx context.Context, steps []Step, rc *Context) *Run {
	run := NewRun(steps)
	run.Outcome = OutcomeRunning
	run.Started = time.Now()

	if rc.Context == nil {
		rc.Context = ctx
	}

	total := len(steps)
	o.reporter.RunStarted(total)

	completed := 0
	for i, step := range steps {
		run.Cursor = i
		stepLog := o.logger.WithFields(map[string]any{"step": step.Name})

		if step.Skip != nil {
			shouldSkip, err := step.Skip(rc)
			if err != nil {
				stepLog.Error(err, "environment probe failed")
				result := model.StepResult{
					Step:    step.Name,
					Status:  model.StatusFailed,
					Message: "environment probe failed",
					Err:     err,
				}
				run.Results = append(run.Results, result)
				o.reporter.StepFinished(result, completed, total)
				run.fail(step.Name, err)
				o.reporter.RunFinished(run)
				return run
			}
			if shouldSkip {
				message := step.SkipText
				if message == "" {
					message = "already satisfied"
				}
				stepLog.Info("step skipped")
				result := model.StepResult{
					Step:    step.Name,
					Status:  model.StatusSkipped,
					Message: message,
				}
				run.Results = append(run.Results, result)
				completed++
				o.reporter.StepFinished(result, completed, total)
				continue
			}
		}

		stepLog.Info("step started")
		o.reporter.StepStarted(step, i, total)

		res := o.perform(ctx, step, rc)

		if !res.OK() {
			err := failureError(ctx, step, res)
			stepLog.Error(err, "step failed")
			result := model.StepResult{
				Step:     step.Name,
				Status:   model.StatusFailed,
				Message:  failureMessage(ctx, res),
				Output:   res.Output,
				Err:      err,
				Duration: res.Duration,
			}
			run.Results = append(run.Results, result)
			o.reporter.StepFinished(result, completed, total)
			run.fail(step.Name, err)
			o.reporter.RunFinished(run)
			return run
		}

		stepLog.Info("step completed")
		result := model.StepResult{
			Step:     step.Name,
			Status:   model.StatusSuccess,
			Message:  "completed",
			Duration: res.Duration,
		}
		if step.Verbose {
			result.Output = res.Output
		}
		run.Results = append(run.Results, result)
		completed++
		o.reporter.StepFinished(result, completed, total)
	}

	run.Cursor = total
	run.succeed()
	o.reporter.RunFinished(run)
	return run
}

// perform dispatches the step's action through the runner and waits for the
// handle. Cancellation propagates into the action's own context and the
// worker still reports through the handle, so waiting on Done is enough.
func (o *Orchestrator) perform(ctx context.Context, step Step, rc *Context) model.ActionResult {
	var handle ActionHandle

	switch {
	case step.Commands != nil:
		handle = o.runner.Start(ctx, step.Commands(rc))
	case step.Run != nil:
		handle = o.runner.StartFunc(ctx, func(c context.Context) error {
			return step.Run(c, rc)
		})
	default:
		return model.ActionResult{}
	}

	<-handle.Done()
	return handle.Result()
}

func failureError(ctx context.Context, step Step, res model.ActionResult) error {
	base := fmt.Errorf("exit status %d", res.ExitCode)
	if res.Failed != "" {
		base = fmt.Errorf("%s: exit status %d", res.Failed, res.ExitCode)
	}
	if ctx.Err() != nil {
		base = fmt.Errorf("interrupted: %w", ctx.Err())
	}
	return panelerrors.NewStepErrorWithHint(step.Name, step.FailureHint, res.Output, base)
}

func failureMessage(ctx context.Context, res model.ActionResult) string {
	if ctx.Err() != nil {
		return "interrupted"
	}
	if res.Failed != "" {
		return fmt.Sprintf("%s failed with exit status %d", res.Failed, res.ExitCode)
	}
	return fmt.Sprintf("exit status %d", res.ExitCode)
}

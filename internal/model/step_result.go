package model

import (
	"time"
)

const (
	// StatusPending indicates a step has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a step is actively executing.
	StatusRunning = "running"
	// StatusSuccess marks a successful step execution.
	StatusSuccess = "success"
	// StatusSkipped indicates the orchestrator skipped the step.
	StatusSkipped = "skipped"
	// StatusFailed marks a failure during step execution.
	StatusFailed = "failed"
)

// StepResult captures the outcome of executing a single provisioning step.
// Output holds whatever the step's commands printed, kept for the failure
// summary and for verbose steps.
type StepResult struct {
	Step     string
	Status   string
	Message  string
	Output   string
	Err      error
	Duration time.Duration
}

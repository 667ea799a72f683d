package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StepError represents a runtime failure while executing a provisioning step.
// Hint carries remediation guidance shown in the failure summary, Output the
// tail of whatever the failing command printed.
type StepError struct {
	Step   string
	Hint   string
	Output string
	Err    error
}

// NewStepError constructs a StepError.
func NewStepError(step string, err error) error {
	return &StepError{Step: step, Err: err}
}

// NewStepErrorWithHint constructs a StepError carrying remediation guidance
// and captured command output.
func NewStepErrorWithHint(step, hint, output string, err error) error {
	return &StepError{Step: step, Hint: hint, Output: output, Err: err}
}

func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	if e.Step != "" {
		return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("step failed: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProbeError indicates that an environment probe could not determine its
// fact. A failed probe is fatal: the run must not guess whether work is
// needed.
type ProbeError struct {
	Fact    string
	Message string
	Err     error
}

// NewProbeError constructs a ProbeError for the given fact.
func NewProbeError(fact string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ProbeError{Fact: fact, Message: message, Err: err}
}

func (e *ProbeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Fact != "" {
		return fmt.Sprintf("probe error [%s]: %s", e.Fact, e.Message)
	}
	return fmt.Sprintf("probe error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ProbeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

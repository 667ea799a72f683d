package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("panel.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "panel.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "panel.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("service.port", "must be between 1 and 65535", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "service.port", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be between 1 and 65535")
}

func TestStepErrorIncludesStepContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("command failed")
	err := NewStepError("install-packages", underlying)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "install-packages", stepErr.Step)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "install-packages")
}

func TestStepErrorCarriesHintAndOutput(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 100")
	err := NewStepErrorWithHint("install-packages", "check apt sources", "E: Unable to locate package", underlying)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "check apt sources", stepErr.Hint)
	require.Equal(t, "E: Unable to locate package", stepErr.Output)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestProbeErrorIncludesFactName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("dpkg-query not found")
	err := NewProbeError("missing-packages", underlying)

	var probeErr *ProbeError
	require.ErrorAs(t, err, &probeErr)
	require.Equal(t, "missing-packages", probeErr.Fact)
	require.True(t, stdErrors.Is(err, underlying))
}

package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mooh971/Go-panel/internal/model"
)

func TestStepListPreservesOrderAndResults(t *testing.T) {
	t.Parallel()

	order := []StepEntry{
		{Name: "install-packages", Description: "Installing OS packages"},
		{Name: "install-docker", Description: "Installing Docker engine"},
	}
	results := map[string]model.StepResult{
		"install-docker": {Step: "install-docker", Status: model.StatusRunning},
	}

	entries := NewStepList(order, results).Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "install-packages", entries[0].Name)
	require.Empty(t, entries[0].Result.Status)
	require.Equal(t, model.StatusRunning, entries[1].Result.Status)
}

func TestStepListEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	list := NewStepList([]StepEntry{{Name: "deploy-files"}}, nil)
	entries := list.Entries()
	entries[0].Name = "mutated"

	require.Equal(t, "deploy-files", list.Entries()[0].Name)
}

package components

import (
	"github.com/mooh971/Go-panel/internal/model"
)

// StepEntry represents a single step for rendering.
type StepEntry struct {
	Name        string
	Description string
	Result      model.StepResult
}

// StepList renders the provisioning sequence with each step's current
// status, in execution order.
type StepList struct {
	entries []StepEntry
}

// NewStepList constructs a step list from the ordered names and the result
// map keyed by step name.
func NewStepList(order []StepEntry, results map[string]model.StepResult) StepList {
	entries := make([]StepEntry, 0, len(order))
	for _, entry := range order {
		entry.Result = results[entry.Name]
		entries = append(entries, entry)
	}
	return StepList{entries: entries}
}

// Entries returns the ordered step entries.
func (s StepList) Entries() []StepEntry {
	clone := make([]StepEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}

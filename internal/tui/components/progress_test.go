package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	p := NewProgress(10)
	require.Equal(t, 10, p.total)
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	t.Run("renders zero completion", func(t *testing.T) {
		t.Parallel()
		view := NewProgress(10).View(0)
		require.Contains(t, view, "0%")
	})

	t.Run("renders floored percentage", func(t *testing.T) {
		t.Parallel()
		view := NewProgress(3).View(1)
		require.Contains(t, view, "33%")
	})

	t.Run("stays below one hundred while work remains", func(t *testing.T) {
		t.Parallel()
		view := NewProgress(3).View(2)
		require.Contains(t, view, "66%")
		require.NotContains(t, view, "100%")
	})

	t.Run("reads one hundred only at completion", func(t *testing.T) {
		t.Parallel()
		view := NewProgress(3).View(3)
		require.Contains(t, view, "100%")
	})

	t.Run("handles zero total", func(t *testing.T) {
		t.Parallel()
		view := NewProgress(0).View(0)
		require.Contains(t, view, "0%")
	})
}

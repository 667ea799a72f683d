package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/mooh971/Go-panel/internal/engine"
)

// Progress renders overall run completion. The percentage comes from
// engine.Percent, so the bar never reads 100 while a step is still pending
// or the run has failed short of the end.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given total. The bar's
// own percentage readout is disabled; the label is the only display so the
// floor-and-clamp rule cannot be contradicted by the bar's rounding.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, total: total}
}

// View renders the percentage label and bar for the provided completion
// count.
func (p Progress) View(completed int) string {
	pct := engine.Percent(completed, p.total)
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3d%%", pct))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(float64(pct)/100))
}

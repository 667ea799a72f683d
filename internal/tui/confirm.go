package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mooh971/Go-panel/internal/config"
)

// Confirm shows the pre-run gate and reports whether the operator approved
// the plan. Declining or pressing Esc aborts cleanly; only a broken terminal
// surfaces as an error.
func Confirm(ctx context.Context, cfg *config.Config, total int) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Provision this host in %d steps?", total)).
				Description(planSummary(cfg)).
				Affirmative("Provision").
				Negative("Abort").
				Value(&confirmed),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return confirmed, nil
}

// planSummary condenses the effective configuration into the lines shown
// under the gate question.
func planSummary(cfg *config.Config) string {
	lines := []string{
		fmt.Sprintf("Packages:  %s", strings.Join(cfg.Packages.Names, ", ")),
		fmt.Sprintf("Runtime:   %s", cfg.Runtime.Command),
		fmt.Sprintf("Toolchain: Go %s under %s", cfg.Toolchain.Version, cfg.Toolchain.Root),
		fmt.Sprintf("Install:   %s (owner %s)", cfg.Install.Dir, cfg.Install.Owner),
		fmt.Sprintf("Service:   %s on port %d", cfg.Service.Unit, cfg.Service.Port),
	}
	if cfg.Source.Repository != "" {
		lines = append(lines, fmt.Sprintf("Source:    %s", cfg.Source.Repository))
	}
	return strings.Join(lines, "\n")
}

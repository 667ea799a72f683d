package engine

import (
	"context"

	"github.com/mooh971/Go-panel/internal/config"
	"github.com/mooh971/Go-panel/internal/logger"
	"github.com/mooh971/Go-panel/internal/probe"
)

// Context carries run-scoped state between steps. Earlier steps record what
// they decided or produced here and later steps read it, so nothing travels
// through globals or the environment.
type Context struct {
	Context context.Context
	Config  *config.Config
	Probe   *probe.Probe
	Logger  *logger.Logger

	// WorkDir is the directory panelsetup was invoked from.
	WorkDir string

	// ArchivePath is the staged archive chosen by the probe, empty when
	// none is present.
	ArchivePath string

	// StagingDir is where the archive was extracted.
	StagingDir string

	// CloneDir is where the source repository was cloned.
	CloneDir string

	// SourceDir is the directory the deploy step copies from, chosen by
	// the source decision step.
	SourceDir string

	// UnitPath is the service unit file written by the registration step.
	UnitPath string
}

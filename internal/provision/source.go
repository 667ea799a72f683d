package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/mooh971/Go-panel/internal/config"
)

// cloneDirName is the working-directory subdirectory repositories are cloned
// into.
const cloneDirName = "gopanel-src"

// stageDirFor returns the extraction directory for a staged archive: the
// archive path with its extension removed, so panel-1.2.7z unpacks into
// panel-1.2 next to it.
func stageDirFor(archive string) string {
	ext := filepath.Ext(archive)
	if ext == "" {
		return archive + ".extracted"
	}
	return strings.TrimSuffix(archive, ext)
}

// runtimeUnit maps the runtime command to the systemd unit the service is
// ordered after.
func runtimeUnit(command string) string {
	return command + ".service"
}

// cloneOptions translates the source configuration into go-git options.
// Branch and depth narrow the clone when set.
func cloneOptions(src config.SourceConfig) *git.CloneOptions {
	opts := &git.CloneOptions{URL: src.Repository}
	if src.Depth > 0 {
		opts.Depth = src.Depth
	}
	if src.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Branch)
		opts.SingleBranch = true
	}
	return opts
}

// cloneSource clones the configured repository into dest, replacing whatever
// a previous run left there.
func cloneSource(ctx context.Context, src config.SourceConfig, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("clear clone directory: %w", err)
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, cloneOptions(src)); err != nil {
		return fmt.Errorf("clone %s: %w", src.Repository, err)
	}
	return nil
}

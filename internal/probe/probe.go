package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

// Probe answers idempotency questions about the host. Each fact is computed
// the first time it is requested and cached, error included, for the rest of
// the run, so every step predicate consulting a fact sees the same answer.
// Probing never mutates system state.
type Probe struct {
	// UnitDir is where registered service units live. Tests point it at a
	// scratch directory.
	UnitDir string

	mu    sync.Mutex
	facts map[string]fact
}

type fact struct {
	value any
	err   error
}

// New creates a Probe with an empty fact cache.
func New() *Probe {
	return &Probe{
		UnitDir: "/etc/systemd/system",
		facts:   make(map[string]fact),
	}
}

func (p *Probe) memo(key string, compute func() (any, error)) (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.facts[key]; ok {
		return cached.value, cached.err
	}

	value, err := compute()
	p.facts[key] = fact{value: value, err: err}
	return value, err
}

// CommandOnPath reports whether an executable with the given name resolves on
// PATH. Anything other than a clean not-found is indeterminate and fails the
// run.
func (p *Probe) CommandOnPath(name string) (bool, error) {
	key := "command:" + name
	value, err := p.memo(key, func() (any, error) {
		_, lookErr := exec.LookPath(name)
		if lookErr == nil {
			return true, nil
		}
		if errors.Is(lookErr, exec.ErrNotFound) {
			return false, nil
		}
		return false, panelerrors.NewProbeError(key, lookErr)
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

// StagedArchive returns the path of the archive staged in dir matching
// pattern, or empty when none is present. At most one archive is expected;
// when several match, the lexicographically first is chosen so repeated runs
// pick the same file.
func (p *Probe) StagedArchive(dir, pattern string) (string, error) {
	key := "archive:" + filepath.Join(dir, pattern)
	value, err := p.memo(key, func() (any, error) {
		matches, globErr := filepath.Glob(filepath.Join(dir, pattern))
		if globErr != nil {
			return "", panelerrors.NewProbeError(key, globErr)
		}
		if len(matches) == 0 {
			return "", nil
		}
		sort.Strings(matches)
		return matches[0], nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// ServiceRegistered reports whether a unit file with the given name already
// exists under UnitDir.
func (p *Probe) ServiceRegistered(unit string) (bool, error) {
	key := "service:" + unit
	value, err := p.memo(key, func() (any, error) {
		_, statErr := os.Stat(filepath.Join(p.UnitDir, unit))
		if statErr == nil {
			return true, nil
		}
		if errors.Is(statErr, fs.ErrNotExist) {
			return false, nil
		}
		return false, panelerrors.NewProbeError(key, statErr)
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

// MissingPackages returns the subset of names not installed, in input order.
// dpkg-query decides: a clean exit means installed, a non-zero exit means
// missing, any other failure is indeterminate.
func (p *Probe) MissingPackages(ctx context.Context, names []string) ([]string, error) {
	key := "packages:" + strings.Join(names, ",")
	value, err := p.memo(key, func() (any, error) {
		var missing []string
		for _, name := range names {
			cmd := exec.CommandContext(ctx, "dpkg-query", "-W", name)
			if runErr := cmd.Run(); runErr != nil {
				var exitErr *exec.ExitError
				if errors.As(runErr, &exitErr) {
					missing = append(missing, name)
					continue
				}
				return nil, panelerrors.NewProbeError(key, fmt.Errorf("query %s: %w", name, runErr))
			}
		}
		return missing, nil
	})
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return value.([]string), nil
}

// ToolchainCurrent reports whether the toolchain under root already reports
// exactly the wanted version. A binary that is absent or fails to run means
// the wanted toolchain is not installed, which is a determinate answer, not
// an error.
func (p *Probe) ToolchainCurrent(ctx context.Context, root, version string) (bool, error) {
	key := "toolchain:" + root + "@" + version
	value, err := p.memo(key, func() (any, error) {
		bin := filepath.Join(root, "bin", "go")
		out, runErr := exec.CommandContext(ctx, bin, "version").Output()
		if runErr != nil {
			return false, nil
		}

		fields := strings.Fields(string(out))
		if len(fields) < 3 {
			return false, nil
		}
		return fields[2] == "go"+version, nil
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

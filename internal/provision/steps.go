// Package provision builds the ordered step catalogue that takes a fresh
// Debian or Ubuntu host to a running Go-panel service.
package provision

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mooh971/Go-panel/internal/config"
	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/systemd"
)

// BuildSteps assembles the provisioning sequence for cfg. Slice order is
// execution order; the orchestrator never reorders steps.
func BuildSteps(cfg *config.Config) []engine.Step {
	return []engine.Step{
		installPackagesStep(cfg),
		installDockerStep(cfg),
		installToolchainStep(cfg),
		fetchSourceStep(cfg),
		extractArchiveStep(cfg),
		selectSourceStep(cfg),
		deployFilesStep(cfg),
		setPermissionsStep(cfg),
		writeUnitStep(cfg),
		enableServiceStep(cfg),
	}
}

func installPackagesStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "install-packages",
		Description: "Installing OS packages",
		FailureHint: "apt-get failed; check network access and the apt sources, then rerun",
		SkipText:    "all packages already installed",
		Skip: func(rc *engine.Context) (bool, error) {
			missing, err := rc.Probe.MissingPackages(rc.Context, cfg.Packages.Names)
			if err != nil {
				return false, err
			}
			return len(missing) == 0, nil
		},
		Commands: func(rc *engine.Context) []engine.Command {
			// Skip resolved this fact already; the memoized value cannot
			// error here.
			missing, _ := rc.Probe.MissingPackages(rc.Context, cfg.Packages.Names)
			return []engine.Command{
				{Name: "apt-get update", Line: "apt-get update"},
				{Name: "apt-get install", Line: "apt-get install -y " + strings.Join(missing, " ")},
			}
		},
	}
}

func installDockerStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "install-docker",
		Description: "Installing Docker engine",
		FailureHint: "Docker install failed; see https://docs.docker.com/engine/install/ for manual steps",
		SkipText:    fmt.Sprintf("%s already installed", cfg.Runtime.Command),
		Skip: func(rc *engine.Context) (bool, error) {
			return rc.Probe.CommandOnPath(cfg.Runtime.Command)
		},
		Commands: func(rc *engine.Context) []engine.Command {
			installer := "/tmp/" + path.Base(cfg.Runtime.InstallScript)
			return []engine.Command{
				{Name: "download installer", Line: fmt.Sprintf("curl -fsSL %s -o %s", cfg.Runtime.InstallScript, installer)},
				{Name: "run installer", Line: "sh " + installer},
				{Name: "enable runtime", Line: fmt.Sprintf("systemctl enable --now %s", cfg.Runtime.Command)},
			}
		},
	}
}

func installToolchainStep(cfg *config.Config) engine.Step {
	tarball := cfg.Toolchain.TarballURL(runtime.GOOS, runtime.GOARCH)
	download := "/tmp/" + path.Base(tarball)
	return engine.Step{
		Name:        "install-toolchain",
		Description: fmt.Sprintf("Installing Go %s", cfg.Toolchain.Version),
		FailureHint: "toolchain install failed; verify toolchain.version and toolchain.mirror in the config",
		SkipText:    fmt.Sprintf("go %s already installed", cfg.Toolchain.Version),
		Skip: func(rc *engine.Context) (bool, error) {
			return rc.Probe.ToolchainCurrent(rc.Context, cfg.Toolchain.Root, cfg.Toolchain.Version)
		},
		Commands: func(rc *engine.Context) []engine.Command {
			return []engine.Command{
				{Name: "download toolchain", Line: fmt.Sprintf("curl -fsSL %s -o %s", tarball, download)},
				{Name: "remove old toolchain", Line: "rm -rf " + cfg.Toolchain.Root},
				{Name: "extract toolchain", Line: fmt.Sprintf("tar -C %s -xzf %s", filepath.Dir(cfg.Toolchain.Root), download)},
			}
		},
	}
}

func fetchSourceStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "fetch-source",
		Description: "Fetching project source",
		FailureHint: "clone failed; verify source.repository and source.branch are reachable from this host",
		SkipText:    "archive staged or no repository configured",
		Skip: func(rc *engine.Context) (bool, error) {
			if cfg.Source.Repository == "" {
				return true, nil
			}
			archive, err := rc.Probe.StagedArchive(rc.WorkDir, cfg.Source.ArchivePattern)
			if err != nil {
				return false, err
			}
			// A staged archive outranks the repository.
			return archive != "", nil
		},
		Run: func(ctx context.Context, rc *engine.Context) error {
			rc.CloneDir = filepath.Join(rc.WorkDir, cloneDirName)
			return cloneSource(ctx, cfg.Source, rc.CloneDir)
		},
	}
}

func extractArchiveStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "extract-archive",
		Description: "Extracting staged archive",
		FailureHint: "extraction failed; verify the staged archive is a valid 7z file",
		SkipText:    "no archive staged",
		Skip: func(rc *engine.Context) (bool, error) {
			archive, err := rc.Probe.StagedArchive(rc.WorkDir, cfg.Source.ArchivePattern)
			if err != nil {
				return false, err
			}
			return archive == "", nil
		},
		Commands: func(rc *engine.Context) []engine.Command {
			archive, _ := rc.Probe.StagedArchive(rc.WorkDir, cfg.Source.ArchivePattern)
			return []engine.Command{
				{Name: "extract archive", Line: fmt.Sprintf("7z x -y -o%s %s", stageDirFor(archive), archive)},
			}
		},
	}
}

func selectSourceStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "select-source",
		Description: "Selecting project source",
		FailureHint: "source selection failed; check the staged archive and the working directory",
		Run: func(ctx context.Context, rc *engine.Context) error {
			archive, err := rc.Probe.StagedArchive(rc.WorkDir, cfg.Source.ArchivePattern)
			if err != nil {
				return err
			}
			switch {
			case archive != "":
				rc.ArchivePath = archive
				rc.StagingDir = stageDirFor(archive)
				rc.SourceDir = rc.StagingDir
			case rc.CloneDir != "":
				rc.SourceDir = rc.CloneDir
			default:
				rc.SourceDir = rc.WorkDir
			}
			rc.Logger.WithFields(map[string]any{"dir": rc.SourceDir}).Debug("selected project source")
			return nil
		},
	}
}

func deployFilesStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "deploy-files",
		Description: fmt.Sprintf("Deploying files to %s", cfg.Install.Dir),
		FailureHint: "deploy failed; check free disk space and that nothing holds files open under " + cfg.Install.Dir,
		Commands: func(rc *engine.Context) []engine.Command {
			return []engine.Command{
				{Name: "clear install dir", Line: "rm -rf " + cfg.Install.Dir},
				{Name: "create install dir", Line: "mkdir -p " + cfg.Install.Dir},
				{Name: "copy files", Line: fmt.Sprintf("cp -a %s/. %s/", rc.SourceDir, cfg.Install.Dir)},
			}
		},
	}
}

func setPermissionsStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "set-permissions",
		Description: "Setting ownership and permissions",
		FailureHint: fmt.Sprintf("permission change failed; verify owner %q exists on this host", cfg.Install.Owner),
		Commands: func(rc *engine.Context) []engine.Command {
			return []engine.Command{
				{Name: "chown", Line: fmt.Sprintf("chown -R %s %s", cfg.Install.Owner, cfg.Install.Dir)},
				{Name: "chmod", Line: fmt.Sprintf("chmod -R %s %s", cfg.Install.Mode, cfg.Install.Dir)},
			}
		},
	}
}

func writeUnitStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "write-unit",
		Description: "Writing systemd unit",
		FailureHint: "could not write the unit file; check permissions on the systemd unit directory",
		SkipText:    "service already registered",
		Skip: func(rc *engine.Context) (bool, error) {
			return rc.Probe.ServiceRegistered(cfg.Service.Unit)
		},
		Run: func(ctx context.Context, rc *engine.Context) error {
			unit := systemd.Unit{
				Name:        cfg.Service.Unit,
				Description: cfg.Service.Description,
				WorkingDir:  cfg.Install.Dir,
				ExecStart:   cfg.Service.ExecStart,
				RuntimeUnit: runtimeUnit(cfg.Runtime.Command),
			}
			unitPath, err := systemd.Write(rc.Probe.UnitDir, unit)
			if err != nil {
				return err
			}
			rc.UnitPath = unitPath
			return nil
		},
	}
}

func enableServiceStep(cfg *config.Config) engine.Step {
	return engine.Step{
		Name:        "enable-service",
		Description: fmt.Sprintf("Enabling %s", cfg.Service.Unit),
		FailureHint: fmt.Sprintf("systemctl failed; inspect `systemctl status %s` and `journalctl -xe`", cfg.Service.Unit),
		SkipText:    "service already registered",
		Skip: func(rc *engine.Context) (bool, error) {
			// Same memoized fact as write-unit, so the unit file created by
			// this run never flips the answer mid-run.
			return rc.Probe.ServiceRegistered(cfg.Service.Unit)
		},
		Commands: func(rc *engine.Context) []engine.Command {
			return []engine.Command{
				{Name: "daemon-reload", Line: "systemctl daemon-reload"},
				{Name: "enable service", Line: "systemctl enable --now " + cfg.Service.Unit},
			}
		},
	}
}

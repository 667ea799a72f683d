package config

import (
	"fmt"
	"strings"
)

// Config represents the full panelsetup provisioning document.
type Config struct {
	Packages  PackagesConfig  `yaml:"packages"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Source    SourceConfig    `yaml:"source,omitempty"`
	Install   InstallConfig   `yaml:"install"`
	Service   ServiceConfig   `yaml:"service"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// PackagesConfig lists the OS packages the host needs before anything else
// can run.
type PackagesConfig struct {
	Names []string `yaml:"names" validate:"required,min=1,dive,min=1,max=100"`
}

// RuntimeConfig describes the container runtime dependency. Command is the
// executable probed on PATH; InstallScript is fetched and run when it is
// absent.
type RuntimeConfig struct {
	Command       string `yaml:"command" validate:"required,min=1"`
	InstallScript string `yaml:"install_script" validate:"required,url"`
}

// ToolchainConfig pins the language toolchain installed under Root.
type ToolchainConfig struct {
	Version string `yaml:"version" validate:"required,go_version"`
	Root    string `yaml:"root" validate:"required,abs_path"`
	Mirror  string `yaml:"mirror" validate:"required,url"`
}

// TarballURL returns the download location of the toolchain archive for the
// given platform.
func (t ToolchainConfig) TarballURL(goos, goarch string) string {
	return fmt.Sprintf("%s/go%s.%s-%s.tar.gz", strings.TrimSuffix(t.Mirror, "/"), t.Version, goos, goarch)
}

// SourceConfig controls where the application files come from. A staged
// archive matching ArchivePattern always wins; Repository is cloned only
// when no archive is present; with neither, the working directory is
// deployed as-is.
type SourceConfig struct {
	Repository     string `yaml:"repository,omitempty" validate:"omitempty,git_url"`
	Branch         string `yaml:"branch,omitempty"`
	Depth          int    `yaml:"depth,omitempty" validate:"omitempty,min=0"`
	ArchivePattern string `yaml:"archive_pattern,omitempty" validate:"omitempty,min=1"`
}

// InstallConfig fixes the deployment target. Dir is fully replaced on every
// run.
type InstallConfig struct {
	Dir   string `yaml:"dir" validate:"required,abs_path"`
	Owner string `yaml:"owner" validate:"required,owner_spec"`
	Mode  string `yaml:"mode" validate:"required,min=1"`
}

// ServiceConfig describes the systemd unit registered for the application.
type ServiceConfig struct {
	Unit        string `yaml:"unit" validate:"required,unit_name"`
	Description string `yaml:"description,omitempty"`
	ExecStart   string `yaml:"exec_start" validate:"required,min=1"`
	Port        int    `yaml:"port" validate:"required,min=1,max=65535"`
}

// LogConfig configures the run log. During an interactive run entries go to
// File because the terminal belongs to the progress renderer.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

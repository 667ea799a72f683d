package config

// Default returns the configuration used when no file is supplied on the
// command line.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills every field the operator left unset. Called before
// validation so partial documents only need to name what they change.
func applyDefaults(cfg *Config) {
	if len(cfg.Packages.Names) == 0 {
		cfg.Packages.Names = []string{"ca-certificates", "curl", "git", "p7zip-full"}
	}
	if cfg.Runtime.Command == "" {
		cfg.Runtime.Command = "docker"
	}
	if cfg.Runtime.InstallScript == "" {
		cfg.Runtime.InstallScript = "https://get.docker.com"
	}
	if cfg.Toolchain.Version == "" {
		cfg.Toolchain.Version = "1.25.1"
	}
	if cfg.Toolchain.Root == "" {
		cfg.Toolchain.Root = "/usr/local/go"
	}
	if cfg.Toolchain.Mirror == "" {
		cfg.Toolchain.Mirror = "https://go.dev/dl"
	}
	if cfg.Source.ArchivePattern == "" {
		cfg.Source.ArchivePattern = "*.7z"
	}
	if cfg.Install.Dir == "" {
		cfg.Install.Dir = "/opt/gopanel"
	}
	if cfg.Install.Owner == "" {
		cfg.Install.Owner = "root:root"
	}
	if cfg.Install.Mode == "" {
		cfg.Install.Mode = "u+rwX,go+rX"
	}
	if cfg.Service.Unit == "" {
		cfg.Service.Unit = "gopanel.service"
	}
	if cfg.Service.Description == "" {
		cfg.Service.Description = "Go-panel server"
	}
	if cfg.Service.ExecStart == "" {
		cfg.Service.ExecStart = "/usr/local/go/bin/go run ."
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 8080
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "panelsetup.log"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

package systemd

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultUnitDir is where registered service units live.
const DefaultUnitDir = "/etc/systemd/system"

// Unit describes the service registered for the deployed application. The
// restart policy and install target are fixed by contract: the service
// restarts on failure and starts only after the container runtime is up.
type Unit struct {
	Name        string
	Description string
	WorkingDir  string
	ExecStart   string

	// RuntimeUnit is the container runtime's unit, an ordering and
	// requirement dependency of the service.
	RuntimeUnit string
}

// Render produces the unit file text.
func Render(u Unit) string {
	return fmt.Sprintf(`[Unit]
Description=%s
After=network-online.target %s
Wants=network-online.target
Requires=%s

[Service]
Type=simple
WorkingDirectory=%s
ExecStart=%s
Restart=on-failure
RestartSec=5

[Install]
WantedBy=multi-user.target
`, u.Description, u.RuntimeUnit, u.RuntimeUnit, u.WorkingDir, u.ExecStart)
}

// Write renders the unit and writes it into dir, returning the unit path.
func Write(dir string, u Unit) (string, error) {
	path := filepath.Join(dir, u.Name)
	if err := os.WriteFile(path, []byte(Render(u)), 0o644); err != nil {
		return "", fmt.Errorf("write unit %s: %w", u.Name, err)
	}
	return path, nil
}

package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	yes        bool
	plain      bool
	verbose    bool
}

var provisionRunner = runProvision

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "panelsetup",
		Short:         "panelsetup provisions a fresh host to run the Go-panel server",
		Long: "panelsetup takes a stock Debian or Ubuntu host to a running Go-panel\n" +
			"service in one unattended pass: OS packages, Docker, the Go toolchain,\n" +
			"application files and a systemd unit. Steps whose outcome is already\n" +
			"present are skipped, so re-running after a failure is safe.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return provisionRunner(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to the provisioning config (built-in defaults when omitted)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation gate")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Force plain line output instead of the progress TUI")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

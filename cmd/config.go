package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configCmd is the parent for configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Sealbox configuration",
	Long: `Provides commands for managing the Sealbox configuration.

The configuration stores the default key derivation cost parameters and
an identifier for this installation. Containers do not record their
cost parameters, so the configured defaults decide whether your sealed
files open on this machine.

Examples:
  # Create the configuration with standard defaults
  sealbox config init

  # Show the current configuration
  sealbox config show

  # Raise the default CPU/memory cost
  sealbox config init --cost-n 65536`,
}

// GetConfigCmd returns the configCmd for testing.
func GetConfigCmd() *cobra.Command {
	return configCmd
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	for _, sub := range configCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

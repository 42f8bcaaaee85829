package cmd

import (
	"fmt"
	"os"

	logger "github.com/sealbox/sealbox/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// commandRan distinguishes RunE failures, which format their own
	// output, from parse and usage errors, which cobra hands back
	// unprinted.
	commandRan bool

	// RootCmd is the top-level sealbox command.
	RootCmd = &cobra.Command{
		Use:   "sealbox",
		Short: "Sealbox - password-based file encryption",
		Long: `Sealbox seals files into password-protected containers.

A sealed container carries its own random salt and nonce; only the
password and the key derivation cost parameters are needed to open it.
The cost parameters are NOT stored in the container, so decryption must
use the same values that encryption did (see sealbox config).

Examples:
  sealbox encrypt notes.txt notes.txt.sealed
  sealbox decrypt notes.txt.sealed notes.txt
  sealbox inspect notes.txt.sealed
  sealbox log -n 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commandRan = true
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !commandRan {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	commandRan = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetInspectCommandState()
	resetLogCommandState()
	resetConfigInitState()
	resetConfigShowState()
	resetRootCobraFlagState()
	resetConfigCobraFlagState()
}

// resetRootCobraFlagState resets the flag state for all top-level commands to prevent test pollution.
func resetRootCobraFlagState() {
	RootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range RootCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

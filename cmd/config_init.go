package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/utils"
)

var (
	configInitCostN        int
	configInitCostR        int
	configInitCostP        int
	configInitMaxMemoryMiB int64
)

func init() {
	configInitCmd.Flags().IntVar(&configInitCostN, "cost-n", crypto.DefaultN, "default scrypt CPU/memory cost (power of two)")
	configInitCmd.Flags().IntVar(&configInitCostR, "cost-r", crypto.DefaultR, "default scrypt block size")
	configInitCmd.Flags().IntVar(&configInitCostP, "cost-p", crypto.DefaultP, "default scrypt parallelism")
	configInitCmd.Flags().Int64Var(&configInitMaxMemoryMiB, "max-memory", crypto.DefaultMaxMemory>>20, "default key derivation memory bound in MiB")
	configCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitCostN = crypto.DefaultN
	configInitCostR = crypto.DefaultR
	configInitCostP = crypto.DefaultP
	configInitMaxMemoryMiB = crypto.DefaultMaxMemory >> 20
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the Sealbox configuration",
	Long: `Creates the Sealbox configuration file with an install ID and the
default key derivation cost parameters.

Running init again is safe: an existing configuration keeps its install
ID, and only the cost parameters you pass as flags are changed.

Keep the cost parameters in mind when moving containers between
machines. A container sealed with non-standard parameters only opens
when decryption uses the same values.

Examples:
  # Create the configuration with standard defaults
  sealbox config init

  # Raise the default CPU/memory cost
  sealbox config init --cost-n 65536 --max-memory 128`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		config, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to initialize user config: %v", err)
		}
		Logger.Debugf("Config loaded with install ID: %s", config.Identity.InstallID)

		flagsChanged := cmd.Flags().Changed("cost-n") || cmd.Flags().Changed("cost-r") ||
			cmd.Flags().Changed("cost-p") || cmd.Flags().Changed("max-memory")

		if flagsChanged {
			if cmd.Flags().Changed("cost-n") {
				config.Defaults.CostN = configInitCostN
			}
			if cmd.Flags().Changed("cost-r") {
				config.Defaults.CostR = configInitCostR
			}
			if cmd.Flags().Changed("cost-p") {
				config.Defaults.CostP = configInitCostP
			}
			if cmd.Flags().Changed("max-memory") {
				config.Defaults.MaxMemoryMiB = configInitMaxMemoryMiB
			}

			params := config.Params()
			if err := params.Validate(); err != nil {
				fmt.Println(color.RedString("✗") + " Invalid cost parameters: " + err.Error())
				return err
			}

			if err := configs.SaveUserConfig(config); err != nil {
				return Logger.ErrorfAndReturn("Failed to save user config: %v", err)
			}

			fmt.Println(color.GreenString("✓") + " Configuration updated")
		} else {
			fmt.Println(color.GreenString("✓") + " Configuration ready at " + color.YellowString(configs.ConfigPath()))
		}

		fmt.Println()
		printConfigSettings(config)

		// A memory bound below the working set makes every seal fail, so
		// flag it here rather than at first use.
		params := config.Params()
		if params.MaxMemory > 0 && params.MemoryRequired() > params.MaxMemory {
			fmt.Println()
			fmt.Println(color.YellowString("⚠") + " The configured cost parameters need " +
				utils.FormatBytes(params.MemoryRequired()) + " but the memory bound is " +
				utils.FormatBytes(params.MaxMemory))
			fmt.Println(color.CyanString("→") + " Lower " + color.YellowString("--cost-n") +
				" or raise " + color.YellowString("--max-memory"))
		}

		return nil
	},
}

// printConfigSettings prints the cost parameter defaults in an aligned block.
func printConfigSettings(config *configs.UserConfig) {
	fmt.Println("Your settings:")
	fmt.Println("  Install ID:  " + color.YellowString(config.Identity.InstallID))
	fmt.Println("  Cost N:      " + color.CyanString(fmt.Sprintf("%d", config.Defaults.CostN)))
	fmt.Println("  Cost r:      " + color.CyanString(fmt.Sprintf("%d", config.Defaults.CostR)))
	fmt.Println("  Cost p:      " + color.CyanString(fmt.Sprintf("%d", config.Defaults.CostP)))
	fmt.Println("  Max memory:  " + color.CyanString(fmt.Sprintf("%d MiB", config.Defaults.MaxMemoryMiB)))
}

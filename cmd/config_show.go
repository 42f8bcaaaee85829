package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/configs"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the current Sealbox configuration.

Shows the install ID and the default key derivation cost parameters.
When no configuration file exists yet, the built-in defaults apply.

Examples:
  # Show the configuration
  sealbox config show

  # Output in JSON format
  sealbox config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Flags: json=%t", configShowJSON)

		config, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %v", err)
		}

		configExists := true
		if _, err := os.Stat(configs.ConfigPath()); os.IsNotExist(err) {
			configExists = false
		}

		if configShowJSON {
			Logger.Debugf("Outputting user config as JSON")
			output, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		if !configExists {
			fmt.Println(color.YellowString("⚠") + " No configuration file found; showing built-in defaults.")
			fmt.Println()
			printConfigSettings(config)
			fmt.Println()
			fmt.Println(color.CyanString("→") + " Run " + color.YellowString("sealbox config init") + " to create it")
			return nil
		}

		fmt.Println(color.CyanString("Sealbox Configuration") + " (" + configs.ConfigPath() + "):")
		fmt.Println()
		printConfigSettings(config)
		return nil
	},
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/utils"
	"github.com/sealbox/sealbox/internal/workflows"
)

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output in JSON format")
}

// resetInspectCommandState resets the inspect command's global state for testing.
func resetInspectCommandState() {
	inspectJSON = false
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Shows the structure of a sealed container",
	Long: `Shows the structure of a sealed container without decrypting it.

No password is needed: the salt, nonce, and authentication tag are
public values and reveal nothing about the password or the contents.
Inspect does not verify the container; a tampered file still decodes.

Examples:
  sealbox inspect notes.txt.sealed
  sealbox inspect --json notes.txt.sealed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")

		result, err := workflows.Inspect(cmd.Context(), workflows.InspectOptions{
			InputPath: args[0],
		})
		if err != nil {
			Logger.Errorf("Inspect failed: %v", err)
			fmt.Println(formatInspectError(err))
			return err
		}

		if inspectJSON {
			Logger.Debugf("Outputting container structure as JSON")
			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal container structure to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Println(color.CyanString("Sealed Container") + " (" + result.InputPath + "):")
		fmt.Println()
		fmt.Printf("  %-12s %s (%d bytes)\n", "Size:", utils.FormatBytes(result.FileSize), result.FileSize)
		fmt.Printf("  %-12s %s\n", "Salt:", color.YellowString(result.SaltHex))
		fmt.Printf("  %-12s %s\n", "Nonce:", color.YellowString(result.NonceHex))
		fmt.Printf("  %-12s %s\n", "Tag:", color.YellowString(result.TagHex))
		fmt.Printf("  %-12s %s\n", "Ciphertext:", utils.FormatBytes(result.CiphertextBytes))
		return nil
	},
}

// formatInspectError formats an inspect error for display to the user.
func formatInspectError(err error) string {
	switch {
	case errors.Is(err, sberrors.ErrInputNotFound):
		return color.RedString("✗") + " Sealed container not found\n" +
			color.RedString("Error: ") + err.Error()

	case errors.Is(err, sberrors.ErrContainerTooSmall):
		return color.RedString("✗") + " Not a sealed container: file is too small\n" +
			color.RedString("Error: ") + err.Error()

	default:
		return color.RedString("✗") + " Failed to inspect container\n" +
			color.RedString("Error: ") + err.Error()
	}
}

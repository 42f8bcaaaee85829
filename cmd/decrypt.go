package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/ui"
	"github.com/sealbox/sealbox/internal/utils"
	"github.com/sealbox/sealbox/internal/workflows"
)

var (
	decryptForce        bool
	decryptCostN        int
	decryptCostR        int
	decryptCostP        int
	decryptMaxMemoryMiB int64
)

// resetDecryptCommandState resets all decrypt command global variables to their default values for testing.
func resetDecryptCommandState() {
	decryptForce = false
	decryptCostN = crypto.DefaultN
	decryptCostR = crypto.DefaultR
	decryptCostP = crypto.DefaultP
	decryptMaxMemoryMiB = crypto.DefaultMaxMemory >> 20
}

func init() {
	decryptCmd.Flags().BoolVarP(&decryptForce, "force", "f", false, "overwrite the output file if it exists")
	addCostFlags(decryptCmd.Flags(), &decryptCostN, &decryptCostR, &decryptCostP, &decryptMaxMemoryMiB)
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <input> <output>",
	Short: "Opens a sealed container and recovers the file",
	Long: `Opens a sealed container and recovers the original file.

The container is verified before anything is written: a wrong password
or a modified container fails cleanly and leaves no output behind. The
cost parameters must match the ones used at encryption time, since the
container does not record them.

The password is read from the SEALBOX_PASSWORD environment variable if
set, from stdin when piped, or from an interactive prompt otherwise.

Examples:
  sealbox decrypt notes.txt.sealed notes.txt
  sealbox decrypt --force notes.txt.sealed notes.txt
  sealbox decrypt --cost-n 65536 notes.txt.sealed notes.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		inputPath, outputPath := args[0], args[1]

		password, err := acquirePassword(false)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Opening sealed container...", verbose)
		defer cleanup()

		params, err := resolveParams(cmd.Flags(), decryptCostN, decryptCostR, decryptCostP, decryptMaxMemoryMiB)
		if err != nil {
			crypto.Wipe(password)
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Password:   password,
			Params:     params,
			Force:      decryptForce,
		})
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			spinner.FinalMSG = formatDecryptError(err)
			return err
		}

		Logger.Infof("Decrypt command completed successfully: %s (%d bytes)", result.OutputPath, result.PlaintextBytes)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " File recovered successfully!\n" +
			"  " + ui.Path.Sprint(result.InputPath) + " (" + utils.FormatBytes(result.SealedBytes) + ") → " +
			ui.Path.Sprint(result.OutputPath) + " (" + utils.FormatBytes(result.PlaintextBytes) + ")"
		return nil
	},
}

// formatDecryptError formats a decrypt error for display to the user.
func formatDecryptError(err error) string {
	switch {
	case errors.Is(err, sberrors.ErrEmptyPassword):
		return ui.Error.Sprint("✗") + " No password provided"

	case errors.Is(err, sberrors.ErrPasswordTooShort):
		return ui.Error.Sprint("✗") + " Password must be at least " +
			ui.Highlight.Sprintf("%d", workflows.MinPasswordLength) + " characters"

	case errors.Is(err, sberrors.ErrInputNotFound):
		return ui.Error.Sprint("✗") + " Sealed container not found\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, sberrors.ErrOutputExists):
		return ui.Error.Sprint("✗") + " Output file already exists\n" +
			ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to overwrite it"

	case errors.Is(err, sberrors.ErrContainerTooSmall):
		return ui.Error.Sprint("✗") + " Not a sealed container: file is too small\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, sberrors.ErrAuthenticationFailed):
		return ui.Error.Sprint("✗") + " Authentication failed: wrong password or corrupted data\n" +
			ui.Info.Sprint("→") + " Check the password and the cost parameters used at encryption time"

	case errors.Is(err, sberrors.ErrMemoryLimitExceeded):
		return ui.Error.Sprint("✗") + " Key derivation would exceed the memory limit\n" +
			ui.Info.Sprint("→") + " Lower " + ui.Flag.Sprint("--cost-n") + " or raise " + ui.Flag.Sprint("--max-memory")

	case errors.Is(err, sberrors.ErrInvalidCostParameters):
		return ui.Error.Sprint("✗") + " Invalid cost parameters\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to open sealed container\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}

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
	encryptForce        bool
	encryptCostN        int
	encryptCostR        int
	encryptCostP        int
	encryptMaxMemoryMiB int64
)

// resetEncryptCommandState resets all encrypt command global variables to their default values for testing.
func resetEncryptCommandState() {
	encryptForce = false
	encryptCostN = crypto.DefaultN
	encryptCostR = crypto.DefaultR
	encryptCostP = crypto.DefaultP
	encryptMaxMemoryMiB = crypto.DefaultMaxMemory >> 20
}

func init() {
	encryptCmd.Flags().BoolVarP(&encryptForce, "force", "f", false, "overwrite the output file if it exists")
	addCostFlags(encryptCmd.Flags(), &encryptCostN, &encryptCostR, &encryptCostP, &encryptMaxMemoryMiB)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <input> <output>",
	Short: "Seals a file into a password-protected container",
	Long: `Seals a file into a password-protected container.

A fresh random salt and nonce are generated for every run, so sealing
the same file twice produces different containers. The salt and nonce
are stored inside the container; the cost parameters are not, so
decryption must use the same values (see sealbox config for defaults).

The password is read from the SEALBOX_PASSWORD environment variable if
set, from stdin when piped, or from an interactive prompt otherwise.
Passwords must be at least 8 characters.

Examples:
  sealbox encrypt notes.txt notes.txt.sealed
  sealbox encrypt --force notes.txt notes.txt.sealed
  sealbox encrypt --cost-n 65536 notes.txt notes.txt.sealed
  echo "my password" | sealbox encrypt notes.txt notes.txt.sealed`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		inputPath, outputPath := args[0], args[1]

		// Read the password before the spinner starts so the prompt
		// stays readable.
		password, err := acquirePassword(true)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Sealing file...", verbose)
		defer cleanup()

		params, err := resolveParams(cmd.Flags(), encryptCostN, encryptCostR, encryptCostP, encryptMaxMemoryMiB)
		if err != nil {
			crypto.Wipe(password)
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Password:   password,
			Params:     params,
			Force:      encryptForce,
		})
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			spinner.FinalMSG = formatEncryptError(err)
			return err
		}

		Logger.Infof("Encrypt command completed successfully: %s (%d bytes)", result.OutputPath, result.SealedBytes)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " File sealed successfully!\n" +
			"  " + ui.Path.Sprint(result.InputPath) + " (" + utils.FormatBytes(result.PlaintextBytes) + ") → " +
			ui.Path.Sprint(result.OutputPath) + " (" + utils.FormatBytes(result.SealedBytes) + ")\n" +
			ui.Info.Sprint("→") + " Decrypt with " + ui.Code.Sprint("sealbox decrypt "+result.OutputPath+" "+result.InputPath)
		return nil
	},
}

// formatEncryptError formats an encrypt error for display to the user.
func formatEncryptError(err error) string {
	switch {
	case errors.Is(err, sberrors.ErrEmptyPassword):
		return ui.Error.Sprint("✗") + " No password provided"

	case errors.Is(err, sberrors.ErrPasswordTooShort):
		return ui.Error.Sprint("✗") + " Password must be at least " +
			ui.Highlight.Sprintf("%d", workflows.MinPasswordLength) + " characters"

	case errors.Is(err, sberrors.ErrInputNotFound):
		return ui.Error.Sprint("✗") + " Input file not found\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, sberrors.ErrOutputExists):
		return ui.Error.Sprint("✗") + " Output file already exists\n" +
			ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to overwrite it"

	case errors.Is(err, sberrors.ErrInvalidCostParameters):
		return ui.Error.Sprint("✗") + " Invalid cost parameters\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, sberrors.ErrMemoryLimitExceeded):
		return ui.Error.Sprint("✗") + " Key derivation would exceed the memory limit\n" +
			ui.Info.Sprint("→") + " Lower " + ui.Flag.Sprint("--cost-n") + " or raise " + ui.Flag.Sprint("--max-memory")

	default:
		return ui.Error.Sprint("✗") + " Failed to seal file\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/ui"
	"github.com/sealbox/sealbox/internal/utils"
)

// passwordEnvVar names the environment variable consulted before any
// interactive prompt. Intended for scripting and tests.
const passwordEnvVar = "SEALBOX_PASSWORD"

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// acquirePassword obtains the password for a command, in order of
// preference: the SEALBOX_PASSWORD environment variable, piped stdin,
// then an interactive prompt. When confirm is true the interactive
// prompt asks twice and requires both entries to match; the env and
// pipe sources are never confirmed.
//
// The caller owns the returned slice and must wipe it.
func acquirePassword(confirm bool) ([]byte, error) {
	if env := os.Getenv(passwordEnvVar); env != "" {
		Logger.Debugf("Using password from %s", passwordEnvVar)
		return []byte(env), nil
	}

	if !utils.IsTerminal() {
		Logger.Debugf("Reading password from piped stdin")
		return utils.ReadPasswordLine(os.Stdin)
	}

	password, err := utils.ReadPassphrase("Enter password: ")
	if err != nil {
		return nil, err
	}

	if confirm {
		again, err := utils.ReadPassphrase("Confirm password: ")
		if err != nil {
			crypto.Wipe(password)
			return nil, err
		}
		if !bytes.Equal(password, again) {
			crypto.WipeAll(password, again)
			return nil, fmt.Errorf("passwords do not match")
		}
		crypto.Wipe(again)
	}

	return password, nil
}

// resolveParams builds the cost parameters for a command: the user
// config supplies the defaults, and any cost flag the user actually set
// overrides its field.
func resolveParams(flags *pflag.FlagSet, costN, costR, costP int, maxMemoryMiB int64) (crypto.Params, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return crypto.Params{}, err
	}
	params := config.Params()

	if flags.Changed("cost-n") {
		params.N = costN
	}
	if flags.Changed("cost-r") {
		params.R = costR
	}
	if flags.Changed("cost-p") {
		params.P = costP
	}
	if flags.Changed("max-memory") {
		params.MaxMemory = maxMemoryMiB << 20
	}

	Logger.Debugf("Resolved cost parameters: N=%d r=%d p=%d maxMemory=%d", params.N, params.R, params.P, params.MaxMemory)
	return params, nil
}

// addCostFlags registers the cost parameter flags shared by encrypt and
// decrypt.
func addCostFlags(flags *pflag.FlagSet, costN, costR, costP *int, maxMemoryMiB *int64) {
	flags.IntVar(costN, "cost-n", crypto.DefaultN, "scrypt CPU/memory cost (power of two)")
	flags.IntVar(costR, "cost-r", crypto.DefaultR, "scrypt block size")
	flags.IntVar(costP, "cost-p", crypto.DefaultP, "scrypt parallelism")
	flags.Int64Var(maxMemoryMiB, "max-memory", crypto.DefaultMaxMemory>>20, "key derivation memory bound in MiB")
}

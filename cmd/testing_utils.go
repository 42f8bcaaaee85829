// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealbox/sealbox/internal/configs"
	logger "github.com/sealbox/sealbox/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the user settings at temporary directories
// and restores everything when the test finishes.
func setupTestEnvironment(t *testing.T, tempDir string) {
	originalUserSettings := configs.UserSealboxSettings

	t.Cleanup(func() {
		configs.UserSealboxSettings = originalUserSettings
		ResetGlobalState()
	})

	configs.UserSealboxSettings = &configs.UserSettings{
		UserConfigPath: filepath.Join(tempDir, "config"),
		UserDataPath:   filepath.Join(tempDir, "data"),
		Username:       "testuser",
	}

	ResetGlobalState()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a CLI instance for testing that runs the given
// arguments against the real command set.
func createTestCLI(args []string, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	// Set global flags for the actual command implementations.
	verbose = verboseFlag
	debug = debugFlag

	// Initialize the logger with the test flags
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	if stdout != nil {
		RootCmd.SetOut(stdout)
	}
	if stderr != nil {
		RootCmd.SetErr(stderr)
	}

	RootCmd.SetArgs(args)
	return RootCmd
}

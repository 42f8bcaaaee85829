// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the CLI.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealbox/sealbox/cmd"
	"github.com/sealbox/sealbox/internal/configs"
)

// TestPassword is the password used by integration tests, provided to the
// CLI through the SEALBOX_PASSWORD environment variable.
const TestPassword = "integration-password-123"

// SetupTestEnvironment points the user settings at temporary directories,
// sets the test password, and restores everything when the test finishes.
func SetupTestEnvironment(t *testing.T, tempDir string) {
	t.Helper()
	originalUserSettings := configs.UserSealboxSettings

	t.Cleanup(func() {
		configs.UserSealboxSettings = originalUserSettings
		cmd.ResetGlobalState()
	})

	configs.UserSealboxSettings = &configs.UserSettings{
		UserConfigPath: filepath.Join(tempDir, "config"),
		UserDataPath:   filepath.Join(tempDir, "data"),
		Username:       "testuser",
	}

	t.Setenv("SEALBOX_PASSWORD", TestPassword)
	cmd.ResetGlobalState()
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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

// RunCLI runs the sealbox CLI with the given arguments, capturing output.
// Command state is reset afterwards so tests can chain invocations.
func RunCLI(args ...string) (string, error) {
	root := cmd.GetRootCmd()
	root.SetArgs(args)

	output, err := CaptureOutput(func() error {
		return root.Execute()
	})
	cmd.ResetGlobalState()
	return output, err
}

// WriteInputFile writes a plaintext fixture file and returns its path.
func WriteInputFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

// SealFile seals inputPath into outputPath with fast cost parameters.
func SealFile(t *testing.T, inputPath, outputPath string) {
	t.Helper()
	output, err := RunCLI("encrypt", inputPath, outputPath, "--cost-n", "1024")
	if err != nil {
		t.Fatalf("Failed to seal fixture file: %v\nOutput: %s", err, output)
	}
}

package log_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealbox/sealbox/internal/audit"
	"github.com/sealbox/sealbox/test/integration/shared"
)

// TestLogOutput contains integration tests for the `sealbox log` output formats.
func TestLogOutput(t *testing.T) {
	t.Run("OnelineFieldOrder", func(t *testing.T) {
		tempDir := t.TempDir()
		shared.SetupTestEnvironment(t, tempDir)

		inputPath := shared.WriteInputFile(t, tempDir, "notes.txt", []byte("content"))
		shared.SealFile(t, inputPath, filepath.Join(tempDir, "notes.txt.sealed"))

		output, err := shared.RunCLI("log", "--oneline")
		if err != nil {
			t.Fatalf("Log failed: %v", err)
		}

		line := strings.TrimSpace(output)
		fields := strings.Fields(line)
		if len(fields) < 4 {
			t.Fatalf("Expected at least 4 fields in oneline output, got %d: %s", len(fields), line)
		}
		// date user operation input
		if fields[1] != "testuser" {
			t.Errorf("Expected user in second field, got %s", fields[1])
		}
		if fields[2] != "encrypt" {
			t.Errorf("Expected operation in third field, got %s", fields[2])
		}
		if !strings.Contains(fields[3], "notes.txt") {
			t.Errorf("Expected input path in fourth field, got %s", fields[3])
		}
	})

	t.Run("ReverseShowsMostRecentFirst", func(t *testing.T) {
		tempDir := t.TempDir()
		shared.SetupTestEnvironment(t, tempDir)

		firstInput := shared.WriteInputFile(t, tempDir, "first.txt", []byte("content"))
		secondInput := shared.WriteInputFile(t, tempDir, "second.txt", []byte("content"))
		shared.SealFile(t, firstInput, filepath.Join(tempDir, "first.txt.sealed"))
		shared.SealFile(t, secondInput, filepath.Join(tempDir, "second.txt.sealed"))

		output, err := shared.RunCLI("log", "--oneline", "--reverse")
		if err != nil {
			t.Fatalf("Log failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 2 {
			t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), output)
		}
		if !strings.Contains(lines[0], "second.txt") {
			t.Errorf("Expected the most recent operation first, got: %s", lines[0])
		}
		if !strings.Contains(lines[1], "first.txt") {
			t.Errorf("Expected the oldest operation last, got: %s", lines[1])
		}
	})

	t.Run("MalformedLinesAreSkipped", func(t *testing.T) {
		tempDir := t.TempDir()
		shared.SetupTestEnvironment(t, tempDir)

		inputPath := shared.WriteInputFile(t, tempDir, "notes.txt", []byte("content"))
		shared.SealFile(t, inputPath, filepath.Join(tempDir, "notes.txt.sealed"))

		// Corrupt the log with a line that is not JSON.
		logPath := audit.LogPath()
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			t.Fatalf("Failed to open log file: %v", err)
		}
		if _, err := f.WriteString("this is not json\n"); err != nil {
			t.Fatalf("Failed to append garbage line: %v", err)
		}
		f.Close()

		output, err := shared.RunCLI("log", "--oneline")
		if err != nil {
			t.Fatalf("Log failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 1 {
			t.Errorf("Expected the malformed line to be skipped, got %d lines: %s", len(lines), output)
		}
	})
}

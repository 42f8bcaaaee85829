package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// sealFixture encrypts content into a container and returns its path.
func sealFixture(t *testing.T, dir string, content []byte, password string) string {
	t.Helper()
	inputPath := writeInputFile(t, dir, "fixture.txt", content)
	sealedPath := filepath.Join(dir, "fixture.txt.sealed")

	if _, err := Encrypt(context.Background(), EncryptOptions{
		InputPath:  inputPath,
		OutputPath: sealedPath,
		Password:   []byte(password),
		Params:     cheapParams(),
	}); err != nil {
		t.Fatalf("Failed to create sealed fixture: %v", err)
	}
	return sealedPath
}

func TestDecryptWrongPassword(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")
	outputPath := filepath.Join(tempDir, "recovered.txt")

	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: outputPath,
		Password:   []byte("password124"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}

	// No output may exist after a failed authentication.
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("Output file exists after failed authentication")
	}
}

func TestDecryptTamperedContainer(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")

	sealed, err := os.ReadFile(sealedPath)
	if err != nil {
		t.Fatalf("Failed to read container: %v", err)
	}
	sealed[len(sealed)/2] ^= 0x01
	if err := os.WriteFile(sealedPath, sealed, 0600); err != nil {
		t.Fatalf("Failed to write tampered container: %v", err)
	}

	_, err = Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   []byte("password123"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestDecryptTruncatedContainer(t *testing.T) {
	tempDir := withTempSettings(t)
	truncatedPath := writeInputFile(t, tempDir, "truncated.sealed", make([]byte, 43))

	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  truncatedPath,
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   []byte("password123"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrContainerTooSmall) {
		t.Errorf("Expected ErrContainerTooSmall, got %v", err)
	}
}

func TestDecryptMissingInput(t *testing.T) {
	tempDir := withTempSettings(t)

	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  filepath.Join(tempDir, "does-not-exist.sealed"),
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   []byte("password123"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrInputNotFound) {
		t.Errorf("Expected ErrInputNotFound, got %v", err)
	}
}

func TestDecryptRefusesExistingOutput(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")
	outputPath := writeInputFile(t, tempDir, "recovered.txt", []byte("precious"))

	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: outputPath,
		Password:   []byte("password123"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrOutputExists) {
		t.Errorf("Expected ErrOutputExists, got %v", err)
	}

	existing, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read existing output: %v", err)
	}
	if string(existing) != "precious" {
		t.Error("Existing output file was modified")
	}
}

func TestDecryptForceOverwritesOutput(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")
	outputPath := writeInputFile(t, tempDir, "recovered.txt", []byte("stale"))

	if _, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: outputPath,
		Password:   []byte("password123"),
		Params:     cheapParams(),
		Force:      true,
	}); err != nil {
		t.Fatalf("Decrypt with Force failed: %v", err)
	}

	recovered, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read recovered file: %v", err)
	}
	if string(recovered) != "secret data" {
		t.Errorf("Expected recovered plaintext, got %q", recovered)
	}
}

func TestDecryptMismatchedCostParameters(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")

	// The container does not record cost parameters; opening with
	// different ones derives a different key.
	otherParams := crypto.Params{N: 2048, R: 8, P: 1, MaxMemory: crypto.DefaultMaxMemory}
	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   []byte("password123"),
		Params:     otherParams,
	})
	if !errors.Is(err, sberrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestDecryptPasswordPolicy(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")

	_, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   []byte("short"),
		Params:     cheapParams(),
	})
	if !errors.Is(err, sberrors.ErrPasswordTooShort) {
		t.Errorf("Expected ErrPasswordTooShort, got %v", err)
	}
}

func TestDecryptWipesPassword(t *testing.T) {
	tempDir := withTempSettings(t)
	sealedPath := sealFixture(t, tempDir, []byte("secret data"), "password123")

	password := []byte("password123")
	if _, err := Decrypt(context.Background(), DecryptOptions{
		InputPath:  sealedPath,
		OutputPath: filepath.Join(tempDir, "recovered.txt"),
		Password:   password,
		Params:     cheapParams(),
	}); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	for i, b := range password {
		if b != 0 {
			t.Fatalf("Password byte %d not wiped", i)
		}
	}
}

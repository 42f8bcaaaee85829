package workflows

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sealbox/sealbox/internal/audit"
	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/seal"
)

// MinPasswordLength is the shortest password the command line accepts.
const MinPasswordLength = 8

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// InputPath is the file to seal.
	InputPath string

	// OutputPath is where the sealed container is written.
	OutputPath string

	// Password is the user's password. It is wiped before the workflow
	// returns, on success and on failure.
	Password []byte

	// Params are the key derivation cost parameters to seal with.
	Params crypto.Params

	// Force overwrites an existing output file when true.
	Force bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// InputPath is the file that was sealed.
	InputPath string

	// OutputPath is the sealed container that was written.
	OutputPath string

	// PlaintextBytes is the size of the input file.
	PlaintextBytes int64

	// SealedBytes is the size of the written container.
	SealedBytes int64

	// Duration is the wall time spent deriving the key and sealing.
	Duration time.Duration
}

// Encrypt seals a file into a password-protected container.
//
// It reads the input file, derives a key from the password with a fresh
// random salt, encrypts the contents, and writes the sealed container
// with permissions 0600.
//
// Returns ErrEmptyPassword or ErrPasswordTooShort if the password fails policy.
// Returns ErrInputNotFound if the input file does not exist.
// Returns ErrOutputExists if the output exists and Force is not set.
// Returns ErrMemoryLimitExceeded if the cost parameters exceed the memory bound.
// Returns ErrInvalidCostParameters if the cost parameters are out of range.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	// The seal layer wipes the password too; this covers rejections
	// before sealing begins.
	defer crypto.Wipe(opts.Password)

	if err := checkPasswordPolicy(opts.Password); err != nil {
		return nil, err
	}

	plaintext, err := os.ReadFile(opts.InputPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", sberrors.ErrInputNotFound, opts.InputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	if !opts.Force {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrOutputExists, opts.OutputPath)
		}
	}

	start := time.Now()

	sealed, err := seal.Seal(plaintext, opts.Password, opts.Params)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.OutputPath, sealed, 0600); err != nil {
		return nil, fmt.Errorf("writing sealed container: %w", err)
	}

	duration := time.Since(start)

	result := &EncryptResult{
		InputPath:      opts.InputPath,
		OutputPath:     opts.OutputPath,
		PlaintextBytes: int64(len(plaintext)),
		SealedBytes:    int64(len(sealed)),
		Duration:       duration,
	}

	entry := audit.NewEntry("encrypt")
	entry.Input = opts.InputPath
	entry.Output = opts.OutputPath
	entry.Bytes = result.PlaintextBytes
	entry.CostN = opts.Params.N
	entry.CostR = opts.Params.R
	entry.CostP = opts.Params.P
	entry.DurationMs = duration.Milliseconds()
	audit.Log(entry)

	return result, nil
}

// checkPasswordPolicy enforces the command line's minimum password length.
func checkPasswordPolicy(password []byte) error {
	if len(password) == 0 {
		return sberrors.ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: minimum length is %d characters", sberrors.ErrPasswordTooShort, MinPasswordLength)
	}
	return nil
}

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

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// InputPath is the sealed container to open.
	InputPath string

	// OutputPath is where the recovered plaintext is written.
	OutputPath string

	// Password is the user's password. It is wiped before the workflow
	// returns, on success and on failure.
	Password []byte

	// Params are the key derivation cost parameters. They must match the
	// parameters used at encryption time; the container does not record them.
	Params crypto.Params

	// Force overwrites an existing output file when true.
	Force bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// InputPath is the container that was opened.
	InputPath string

	// OutputPath is the plaintext file that was written.
	OutputPath string

	// SealedBytes is the size of the input container.
	SealedBytes int64

	// PlaintextBytes is the size of the recovered plaintext.
	PlaintextBytes int64

	// Duration is the wall time spent deriving the key and opening.
	Duration time.Duration
}

// Decrypt opens a sealed container and writes the recovered plaintext.
//
// It reads the container, derives the key from the password and the
// embedded salt, verifies the authentication tag, and writes the
// plaintext with permissions 0600. Nothing is written when verification
// fails.
//
// Returns ErrEmptyPassword or ErrPasswordTooShort if the password fails policy.
// Returns ErrInputNotFound if the container does not exist.
// Returns ErrOutputExists if the output exists and Force is not set.
// Returns ErrContainerTooSmall if the container cannot hold its fixed sections.
// Returns ErrAuthenticationFailed if the password is wrong or the container
// was modified.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	defer crypto.Wipe(opts.Password)

	if err := checkPasswordPolicy(opts.Password); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.InputPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", sberrors.ErrInputNotFound, opts.InputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading sealed container: %w", err)
	}

	if !opts.Force {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrOutputExists, opts.OutputPath)
		}
	}

	start := time.Now()

	plaintext, err := seal.Open(data, opts.Password, opts.Params)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.OutputPath, plaintext, 0600); err != nil {
		return nil, fmt.Errorf("writing plaintext: %w", err)
	}

	duration := time.Since(start)

	result := &DecryptResult{
		InputPath:      opts.InputPath,
		OutputPath:     opts.OutputPath,
		SealedBytes:    int64(len(data)),
		PlaintextBytes: int64(len(plaintext)),
		Duration:       duration,
	}

	entry := audit.NewEntry("decrypt")
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

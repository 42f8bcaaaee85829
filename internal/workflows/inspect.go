package workflows

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/container"
	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// InspectOptions configures the inspect workflow.
type InspectOptions struct {
	// InputPath is the sealed container to examine.
	InputPath string
}

// InspectResult contains the decoded structure of a sealed container.
// Salt, nonce, and tag are public values; exposing them reveals nothing
// about the password or the plaintext.
type InspectResult struct {
	// InputPath is the container that was examined.
	InputPath string

	// FileSize is the total container size in bytes.
	FileSize int64

	// SaltHex is the embedded key derivation salt.
	SaltHex string

	// NonceHex is the embedded cipher nonce.
	NonceHex string

	// TagHex is the authentication tag.
	TagHex string

	// CiphertextBytes is the ciphertext length, which equals the
	// plaintext length.
	CiphertextBytes int64
}

// Inspect decodes a sealed container's structure without a password.
//
// No cryptographic work is performed and nothing about the container's
// authenticity is verified; a container that inspects cleanly can still
// fail to open.
//
// Returns ErrInputNotFound if the container does not exist.
// Returns ErrContainerTooSmall if the container cannot hold its fixed sections.
func Inspect(ctx context.Context, opts InspectOptions) (*InspectResult, error) {
	data, err := os.ReadFile(opts.InputPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", sberrors.ErrInputNotFound, opts.InputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading sealed container: %w", err)
	}

	decoded, err := container.DecodeSealed(data)
	if err != nil {
		return nil, err
	}

	return &InspectResult{
		InputPath:       opts.InputPath,
		FileSize:        int64(len(data)),
		SaltHex:         hex.EncodeToString(decoded.Salt),
		NonceHex:        hex.EncodeToString(decoded.Nonce),
		TagHex:          hex.EncodeToString(decoded.Tag),
		CiphertextBytes: int64(len(decoded.Ciphertext)),
	}, nil
}

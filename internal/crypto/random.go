package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// NewSalt returns a fresh random key derivation salt.
func NewSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// NewNonce returns a fresh random GCM nonce. Random generation is safe
// here because every container derives its key from a fresh salt, so a
// nonce never repeats under the same key.
func NewNonce() ([]byte, error) {
	return randomBytes(NonceSize)
}

// randomBytes reads n bytes from the operating system CSPRNG. There is
// no fallback source: if the system randomness fails, the operation
// fails.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", sberrors.ErrRandomUnavailable, err)
	}
	return b, nil
}

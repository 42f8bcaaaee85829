package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// Fixed sizes of the cryptographic values, in bytes.
const (
	// KeySize is the derived key size (AES-256).
	KeySize = 32

	// SaltSize is the key derivation salt size.
	SaltSize = 16

	// NonceSize is the GCM nonce size.
	NonceSize = 12

	// TagSize is the GCM authentication tag size.
	TagSize = 16
)

const (
	DefaultN         = 1 << 15          // scrypt CPU/memory cost
	DefaultR         = 8                // scrypt block size
	DefaultP         = 1                // scrypt parallelism
	DefaultMaxMemory = 64 * 1024 * 1024 // memory bound for derivation, bytes
)

// Params are the scrypt cost parameters for key derivation.
type Params struct {
	// N is the CPU/memory cost. Must be greater than 1 and a power of two.
	N int

	// R is the block size parameter.
	R int

	// P is the parallelization parameter.
	P int

	// MaxMemory bounds the scrypt working set in bytes. Zero disables the
	// bound, which is discouraged outside hosts that enforce their own
	// limits.
	MaxMemory int64
}

// DefaultParams returns the cost parameters used when nothing overrides
// them: N=32768, r=8, p=1, and a 64 MiB memory bound.
func DefaultParams() Params {
	return Params{N: DefaultN, R: DefaultR, P: DefaultP, MaxMemory: DefaultMaxMemory}
}

// Validate checks the cost parameters without doing any derivation work.
// Returns ErrInvalidCostParameters describing the first violation found.
func (p Params) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be greater than 1 and a power of two", sberrors.ErrInvalidCostParameters)
	}
	if p.R < 1 {
		return fmt.Errorf("%w: r must be at least 1", sberrors.ErrInvalidCostParameters)
	}
	if p.P < 1 {
		return fmt.Errorf("%w: p must be at least 1", sberrors.ErrInvalidCostParameters)
	}
	if uint64(p.R)*uint64(p.P) >= 1<<30 {
		return fmt.Errorf("%w: r*p must be below 2^30", sberrors.ErrInvalidCostParameters)
	}
	if p.MaxMemory < 0 {
		return fmt.Errorf("%w: memory bound must not be negative", sberrors.ErrInvalidCostParameters)
	}
	return nil
}

// MemoryRequired estimates the scrypt working set in bytes, using the
// accounting from OpenSSL's EVP_PBE_scrypt: 128*r*(N+2) for the V array
// plus 128*r*p for the B blocks.
func (p Params) MemoryRequired() int64 {
	return 128 * int64(p.R) * (int64(p.N) + 2 + int64(p.P))
}

// DeriveKey derives a 32-byte key from password and salt using scrypt
// with the given cost parameters.
//
// Derivation is deterministic: the same password, salt, and parameters
// always produce the same key, and changing any one of them produces an
// unrelated key. Neither input slice is modified.
//
// Returns ErrEmptyPassword, ErrInvalidSaltLength, or
// ErrInvalidCostParameters for rejected inputs, and
// ErrMemoryLimitExceeded when the working set would exceed
// params.MaxMemory. No derivation work happens on any error path.
func DeriveKey(password, salt []byte, params Params) ([]byte, error) {
	if len(password) == 0 {
		return nil, sberrors.ErrEmptyPassword
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidSaltLength, SaltSize, len(salt))
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.MaxMemory > 0 {
		if need := params.MemoryRequired(); need > params.MaxMemory {
			return nil, fmt.Errorf("%w: derivation needs %d bytes, bound is %d", sberrors.ErrMemoryLimitExceeded, need, params.MaxMemory)
		}
	}

	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sberrors.ErrInvalidCostParameters, err)
	}
	return key, nil
}

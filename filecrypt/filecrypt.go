package filecrypt

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/seal"
)

// SaltHexLen is the required length of Params.SaltHex.
const SaltHexLen = crypto.SaltSize * 2

// NonceHexLen is the required length of Params.NonceHex.
const NonceHexLen = crypto.NonceSize * 2

// Params carries the caller-supplied cryptographic inputs.
type Params struct {
	// SaltHex is the key derivation salt as 32 hexadecimal characters.
	SaltHex string

	// NonceHex is the cipher nonce as 24 hexadecimal characters.
	NonceHex string

	// N, R, P are the scrypt cost parameters. N must be a power of two
	// greater than one; R and P must be at least one.
	N, R, P int

	// MaxMemory bounds the memory key derivation may use, in bytes.
	// Zero disables the bound, which is discouraged; prefer an explicit
	// budget such as 64 MiB.
	MaxMemory int64
}

// kdfParams converts the public parameters into key derivation form.
func (p Params) kdfParams() crypto.Params {
	return crypto.Params{N: p.N, R: p.R, P: p.P, MaxMemory: p.MaxMemory}
}

// decode validates and decodes the hex-encoded salt and nonce.
func (p Params) decode() (salt, nonce []byte, err error) {
	salt, err = decodeHexField(p.SaltHex, crypto.SaltSize, "salt")
	if err != nil {
		return nil, nil, err
	}
	nonce, err = decodeHexField(p.NonceHex, crypto.NonceSize, "nonce")
	if err != nil {
		return nil, nil, err
	}
	return salt, nonce, nil
}

// decodeHexField decodes a hex string that must represent exactly size bytes.
func decodeHexField(s string, size int, name string) ([]byte, error) {
	if len(s) != size*2 {
		return nil, fmt.Errorf("%w: %s must be %d hex characters, got %d", sberrors.ErrMalformedHex, name, size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sberrors.ErrMalformedHex, name, err)
	}
	return b, nil
}

// Encrypt seals plaintext under the password, returning ciphertext
// followed by the 16-byte authentication tag. Given identical inputs
// the output is deterministic; nonce reuse under the same salt and
// password destroys confidentiality, so the caller must supply a fresh
// nonce per encryption. The password slice is zeroed before returning.
//
// Returns ErrMalformedHex if the salt or nonce hex is invalid.
// Returns ErrInvalidCostParameters if the cost parameters are out of range.
// Returns ErrMemoryLimitExceeded if key derivation would exceed MaxMemory.
func Encrypt(plaintext, password []byte, p Params) ([]byte, error) {
	defer crypto.Wipe(password)

	salt, nonce, err := p.decode()
	if err != nil {
		return nil, err
	}

	return seal.SealDetached(plaintext, password, salt, nonce, p.kdfParams())
}

// Decrypt opens a container produced by Encrypt with the same salt,
// nonce, and cost parameters. Tag verification completes before any
// plaintext is released. The password slice is zeroed before returning.
//
// Returns ErrMalformedHex if the salt or nonce hex is invalid.
// Returns ErrContainerTooSmall if data is shorter than 16 bytes.
// Returns ErrAuthenticationFailed if the password is wrong or the
// container was modified.
func Decrypt(data, password []byte, p Params) ([]byte, error) {
	defer crypto.Wipe(password)

	salt, nonce, err := p.decode()
	if err != nil {
		return nil, err
	}

	return seal.OpenDetached(data, password, salt, nonce, p.kdfParams())
}

// EncryptFile reads inputPath, seals its contents, and writes the
// encrypted container to outputPath with permissions 0600. An existing
// output file is overwritten. The password slice is zeroed before
// returning.
//
// Returns ErrInputNotFound if the input file does not exist, plus the
// errors documented on Encrypt.
func EncryptFile(inputPath, outputPath string, password []byte, p Params) error {
	defer crypto.Wipe(password)

	salt, nonce, err := p.decode()
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", sberrors.ErrInputNotFound, inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	data, err := seal.SealDetached(plaintext, password, salt, nonce, p.kdfParams())
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("writing encrypted output: %w", err)
	}

	return nil
}

// DecryptFile reads an encrypted container from inputPath, opens it,
// and writes the plaintext to outputPath with permissions 0600.
// Nothing is written when verification fails. An existing output file
// is overwritten. The password slice is zeroed before returning.
//
// Returns ErrInputNotFound if the container does not exist, plus the
// errors documented on Decrypt.
func DecryptFile(inputPath, outputPath string, password []byte, p Params) error {
	defer crypto.Wipe(password)

	salt, nonce, err := p.decode()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", sberrors.ErrInputNotFound, inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading encrypted input: %w", err)
	}

	plaintext, err := seal.OpenDetached(data, password, salt, nonce, p.kdfParams())
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, plaintext, 0600); err != nil {
		return fmt.Errorf("writing decrypted output: %w", err)
	}

	return nil
}

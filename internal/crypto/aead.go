package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return gcm, nil
}

// Seal encrypts plaintext under key with AES-256-GCM.
//
// The ciphertext is exactly as long as the plaintext and the tag is 16
// bytes; they are returned separately so callers control where each
// lives in their container layout. Zero-length plaintext is valid and
// produces a zero-length ciphertext with a real tag. The additional
// data is authenticated but not encrypted; pass nil when unused.
//
// Returns ErrInvalidKeyLength or ErrInvalidNonceLength for rejected
// inputs. The input slices are not modified.
func Seal(key, nonce, plaintext, additionalData []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidNonceLength, NonceSize, len(nonce))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, additionalData)
	return sealed[:len(plaintext)], sealed[len(plaintext):], nil
}

// Open decrypts a ciphertext and tag produced by Seal.
//
// The tag is verified before any plaintext is released. On verification
// failure the result is discarded and ErrAuthenticationFailed is
// returned; a wrong key and corrupted data are indistinguishable, and
// flipping any single bit of nonce, ciphertext, tag, or additional data
// fails verification.
//
// Returns ErrInvalidKeyLength, ErrInvalidNonceLength, or
// ErrInvalidTagLength for rejected inputs.
func Open(key, nonce, ciphertext, tag, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidNonceLength, NonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidTagLength, TagSize, len(tag))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, additionalData)
	if err != nil {
		return nil, sberrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

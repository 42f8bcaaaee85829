package seal

import (
	"fmt"

	"github.com/sealbox/sealbox/internal/container"
	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// Seal encrypts plaintext into a self-contained sealed container using
// a fresh random salt and nonce. The password slice is zeroed before
// returning; pass a copy if it is needed afterwards.
//
// Returns ErrRandomUnavailable if the system randomness source fails,
// and the key derivation errors for rejected parameters. The plaintext
// is not modified.
func Seal(plaintext, password []byte, params crypto.Params) ([]byte, error) {
	defer crypto.Wipe(password)

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.NewNonce()
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	ciphertext, tag, err := crypto.Seal(key, nonce, plaintext, nil)
	if err != nil {
		return nil, err
	}

	return container.EncodeSealed(salt, nonce, ciphertext, tag), nil
}

// Open decrypts a sealed container produced by Seal. The cost
// parameters must match the ones used to seal; the container does not
// record them. The password slice is zeroed before returning.
//
// Structural rejection happens before key derivation: a container
// shorter than 44 bytes fails with ErrContainerTooSmall and no
// cryptographic work. A wrong password and a corrupted container both
// fail with ErrAuthenticationFailed and are indistinguishable.
func Open(data, password []byte, params crypto.Params) ([]byte, error) {
	defer crypto.Wipe(password)

	decoded, err := container.DecodeSealed(data)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password, decoded.Salt, params)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return crypto.Open(key, decoded.Nonce, decoded.Ciphertext, decoded.Tag, nil)
}

// SealDetached encrypts plaintext into a detached container using a
// caller-supplied salt and nonce. Given identical inputs the output is
// deterministic. The password slice is zeroed before returning.
func SealDetached(plaintext, password, salt, nonce []byte, params crypto.Params) ([]byte, error) {
	defer crypto.Wipe(password)

	if len(nonce) != crypto.NonceSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidNonceLength, crypto.NonceSize, len(nonce))
	}

	key, err := crypto.DeriveKey(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	ciphertext, tag, err := crypto.Seal(key, nonce, plaintext, nil)
	if err != nil {
		return nil, err
	}

	return container.EncodeDetached(ciphertext, tag), nil
}

// OpenDetached decrypts a detached container using the salt and nonce
// it was sealed with. The password slice is zeroed before returning.
func OpenDetached(data, password, salt, nonce []byte, params crypto.Params) ([]byte, error) {
	defer crypto.Wipe(password)

	if len(nonce) != crypto.NonceSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", sberrors.ErrInvalidNonceLength, crypto.NonceSize, len(nonce))
	}

	decoded, err := container.DecodeDetached(data)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return crypto.Open(key, nonce, decoded.Ciphertext, decoded.Tag, nil)
}

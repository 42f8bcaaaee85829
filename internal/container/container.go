package container

import (
	"bytes"
	"fmt"

	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
)

const (
	// HeaderSize is the combined width of the salt and nonce sections.
	HeaderSize = crypto.SaltSize + crypto.NonceSize

	// MinSealedSize is the smallest well-formed sealed container: the
	// header plus the tag, with an empty ciphertext between them.
	MinSealedSize = HeaderSize + crypto.TagSize

	// MinDetachedSize is the smallest well-formed detached container.
	MinDetachedSize = crypto.TagSize
)

// Sealed holds the decoded sections of a sealed container. Every field
// is a copy; mutating the source buffer after decoding does not affect
// it.
type Sealed struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// EncodeSealed concatenates the sections into a sealed container:
// salt, nonce, ciphertext, tag, in that order with no separators.
// Callers must pass a 16-byte salt, 12-byte nonce, and 16-byte tag;
// the seal package guarantees this.
func EncodeSealed(salt, nonce, ciphertext, tag []byte) []byte {
	out := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext)+len(tag))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out
}

// DecodeSealed splits a sealed container into its sections at the fixed
// offsets. Containers shorter than 44 bytes cannot hold all fixed
// sections and fail with ErrContainerTooSmall before any cryptographic
// work.
func DecodeSealed(data []byte) (*Sealed, error) {
	if len(data) < MinSealedSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", sberrors.ErrContainerTooSmall, len(data), MinSealedSize)
	}

	return &Sealed{
		Salt:       bytes.Clone(data[:crypto.SaltSize]),
		Nonce:      bytes.Clone(data[crypto.SaltSize:HeaderSize]),
		Ciphertext: bytes.Clone(data[HeaderSize : len(data)-crypto.TagSize]),
		Tag:        bytes.Clone(data[len(data)-crypto.TagSize:]),
	}, nil
}

// Detached holds the decoded sections of a detached container. Fields
// are copies of the source buffer.
type Detached struct {
	Ciphertext []byte
	Tag        []byte
}

// EncodeDetached concatenates ciphertext and tag. The salt and nonce
// travel out-of-band in this layout.
func EncodeDetached(ciphertext, tag []byte) []byte {
	out := make([]byte, 0, len(ciphertext)+len(tag))
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out
}

// DecodeDetached splits a detached container into ciphertext and tag.
// Containers shorter than the 16-byte tag fail with
// ErrContainerTooSmall.
func DecodeDetached(data []byte) (*Detached, error) {
	if len(data) < MinDetachedSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", sberrors.ErrContainerTooSmall, len(data), MinDetachedSize)
	}

	return &Detached{
		Ciphertext: bytes.Clone(data[:len(data)-crypto.TagSize]),
		Tag:        bytes.Clone(data[len(data)-crypto.TagSize:]),
	}, nil
}

package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sealbox/sealbox/internal/crypto"
	sberrors "github.com/sealbox/sealbox/internal/errors"
)

func sampleSections() (salt, nonce, ciphertext, tag []byte) {
	salt = bytes.Repeat([]byte{0x11}, crypto.SaltSize)
	nonce = bytes.Repeat([]byte{0x22}, crypto.NonceSize)
	ciphertext = []byte("sample ciphertext bytes")
	tag = bytes.Repeat([]byte{0x33}, crypto.TagSize)
	return salt, nonce, ciphertext, tag
}

func TestEncodeSealedLayout(t *testing.T) {
	salt, nonce, ciphertext, tag := sampleSections()

	data := EncodeSealed(salt, nonce, ciphertext, tag)

	if len(data) != MinSealedSize+len(ciphertext) {
		t.Fatalf("Expected container length %d, got %d", MinSealedSize+len(ciphertext), len(data))
	}

	if !bytes.Equal(data[:16], salt) {
		t.Error("Salt section not at offset 0")
	}

	if !bytes.Equal(data[16:28], nonce) {
		t.Error("Nonce section not at offset 16")
	}

	if !bytes.Equal(data[28:len(data)-16], ciphertext) {
		t.Error("Ciphertext section not at offset 28")
	}

	if !bytes.Equal(data[len(data)-16:], tag) {
		t.Error("Tag section not at the end")
	}
}

func TestSealedRoundTrip(t *testing.T) {
	salt, nonce, ciphertext, tag := sampleSections()

	decoded, err := DecodeSealed(EncodeSealed(salt, nonce, ciphertext, tag))
	if err != nil {
		t.Fatalf("DecodeSealed failed: %v", err)
	}

	if !bytes.Equal(decoded.Salt, salt) {
		t.Error("Salt mismatch after round trip")
	}

	if !bytes.Equal(decoded.Nonce, nonce) {
		t.Error("Nonce mismatch after round trip")
	}

	if !bytes.Equal(decoded.Ciphertext, ciphertext) {
		t.Error("Ciphertext mismatch after round trip")
	}

	if !bytes.Equal(decoded.Tag, tag) {
		t.Error("Tag mismatch after round trip")
	}
}

func TestSealedEmptyCiphertext(t *testing.T) {
	salt, nonce, _, tag := sampleSections()

	data := EncodeSealed(salt, nonce, nil, tag)

	if len(data) != MinSealedSize {
		t.Fatalf("Expected minimum container length %d, got %d", MinSealedSize, len(data))
	}

	decoded, err := DecodeSealed(data)
	if err != nil {
		t.Fatalf("DecodeSealed failed: %v", err)
	}

	if len(decoded.Ciphertext) != 0 {
		t.Errorf("Expected empty ciphertext, got %d bytes", len(decoded.Ciphertext))
	}
}

func TestDecodeSealedTooSmall(t *testing.T) {
	for _, size := range []int{0, 1, 16, 28, MinSealedSize - 1} {
		_, err := DecodeSealed(make([]byte, size))
		if !errors.Is(err, sberrors.ErrContainerTooSmall) {
			t.Errorf("Size %d: expected ErrContainerTooSmall, got %v", size, err)
		}
	}
}

func TestDecodeSealedCopies(t *testing.T) {
	salt, nonce, ciphertext, tag := sampleSections()
	data := EncodeSealed(salt, nonce, ciphertext, tag)

	decoded, err := DecodeSealed(data)
	if err != nil {
		t.Fatalf("DecodeSealed failed: %v", err)
	}

	data[0] ^= 0xFF
	data[20] ^= 0xFF
	data[len(data)-1] ^= 0xFF

	if !bytes.Equal(decoded.Salt, salt) {
		t.Error("Mutating the source buffer changed the decoded salt")
	}

	if !bytes.Equal(decoded.Nonce, nonce) {
		t.Error("Mutating the source buffer changed the decoded nonce")
	}

	if !bytes.Equal(decoded.Tag, tag) {
		t.Error("Mutating the source buffer changed the decoded tag")
	}
}

func TestDetachedRoundTrip(t *testing.T) {
	_, _, ciphertext, tag := sampleSections()

	data := EncodeDetached(ciphertext, tag)

	if len(data) != len(ciphertext)+crypto.TagSize {
		t.Fatalf("Expected container length %d, got %d", len(ciphertext)+crypto.TagSize, len(data))
	}

	decoded, err := DecodeDetached(data)
	if err != nil {
		t.Fatalf("DecodeDetached failed: %v", err)
	}

	if !bytes.Equal(decoded.Ciphertext, ciphertext) {
		t.Error("Ciphertext mismatch after round trip")
	}

	if !bytes.Equal(decoded.Tag, tag) {
		t.Error("Tag mismatch after round trip")
	}
}

func TestDetachedEmptyCiphertext(t *testing.T) {
	_, _, _, tag := sampleSections()

	decoded, err := DecodeDetached(EncodeDetached(nil, tag))
	if err != nil {
		t.Fatalf("DecodeDetached failed: %v", err)
	}

	if len(decoded.Ciphertext) != 0 {
		t.Errorf("Expected empty ciphertext, got %d bytes", len(decoded.Ciphertext))
	}

	if !bytes.Equal(decoded.Tag, tag) {
		t.Error("Tag mismatch for tag-only container")
	}
}

func TestDecodeDetachedTooSmall(t *testing.T) {
	for _, size := range []int{0, 1, MinDetachedSize - 1} {
		_, err := DecodeDetached(make([]byte, size))
		if !errors.Is(err, sberrors.ErrContainerTooSmall) {
			t.Errorf("Size %d: expected ErrContainerTooSmall, got %v", size, err)
		}
	}
}

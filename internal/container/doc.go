// Package container encodes and decodes the two sealbox byte layouts.
//
// # Sealed Layout
//
// The sealed layout is the self-contained on-disk format written by the
// CLI. It embeds everything needed for decryption except the password
// and cost parameters:
//
//	offset    width  section
//	0         16     salt
//	16        12     nonce
//	28        n      ciphertext (same length as the plaintext)
//	len-16    16     authentication tag
//
// All widths are fixed, so every section sits at a known offset and no
// length prefixes are needed. There is no magic number and no version
// field; the format cannot be evolved in place, and decoders must know
// the cost parameters out-of-band. An empty plaintext produces the
// 44-byte minimum container.
//
// # Detached Layout
//
// The detached layout carries only ciphertext followed by the 16-byte
// tag. It is used by the filecrypt package, where salt and nonce are
// supplied by the caller and travel out-of-band. The 16-byte tag is its
// minimum size.
//
// Both decoders validate only structure. Decoding cannot tell a valid
// container from random bytes of sufficient length; only tag
// verification during decryption can.
package container

// Package crypto provides the cryptographic primitives for sealbox.
//
// This package implements scrypt key derivation and AES-256-GCM
// authenticated encryption. It deals only in byte slices; container
// layouts and file handling live in the container and seal packages.
//
// # Key Derivation
//
// Keys are derived with scrypt (golang.org/x/crypto/scrypt):
//
//   - 32-byte keys (AES-256)
//   - 16-byte random salts
//   - Cost parameters N/r/p, default N=32768, r=8, p=1
//   - An explicit memory bound checked before any work (64 MiB default)
//
// Derivation is deterministic in (password, salt, N, r, p). The memory
// bound uses the working-set accounting from OpenSSL's EVP_PBE_scrypt,
// 128*r*(N+2) + 128*r*p bytes, so limits behave the same as in tools
// built on that implementation.
//
// # Authenticated Encryption
//
// Seal and Open wrap AES-256-GCM with a 12-byte nonce and a 16-byte
// tag handled as a separate value, letting callers choose where the tag
// lives in their container layout. Open verifies the tag before any
// plaintext is released; a wrong key and corrupted data fail the same
// way.
//
// # Handling Key Material
//
// Derived keys are never serialized. Callers wipe keys and passwords
// with Wipe as soon as the cipher call completes; the higher-level seal
// package does this automatically.
package crypto

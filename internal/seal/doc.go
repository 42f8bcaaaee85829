// Package seal orchestrates password-based encryption end to end.
//
// This is the only package that combines key derivation, the AEAD
// cipher, and the container codecs; front-ends call it and nothing
// below it. Every operation is a single-shot synchronous transform of
// an in-memory buffer: any failure aborts the whole operation with no
// partial result, and there is no shared state, so concurrent calls are
// safe.
//
// # Sealing
//
// Seal generates a fresh random salt and nonce, derives the key,
// encrypts, and returns a self-contained sealed container. Open decodes
// a sealed container, re-derives the key from the embedded salt, and
// verifies-then-decrypts. The container does not record the cost
// parameters, so Open must be called with the parameters used to seal.
//
// SealDetached and OpenDetached are the externally-keyed variants:
// the caller supplies salt and nonce, and the container carries only
// ciphertext and tag. Given identical inputs they are deterministic.
//
// # Password Handling
//
// Every function in this package zeroes both the derived key and the
// caller's password slice before returning, on success and failure
// alike. Callers that need the password afterwards must pass a copy.
package seal

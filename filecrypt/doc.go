// Package filecrypt exposes a file-oriented encryption API for host
// applications that manage their own salts and nonces.
//
// Unlike the sealbox command line, which embeds a fresh random salt and
// nonce in every container, this package takes both as caller-supplied
// hexadecimal strings and produces a detached container holding only
// ciphertext and authentication tag. The caller is responsible for
// storing the salt, nonce, and cost parameters and presenting the same
// values at decryption time.
//
// # Parameters
//
// Params carries the salt (32 hex characters), nonce (24 hex
// characters), the scrypt cost parameters, and an explicit memory
// bound for key derivation. Malformed hex of either value fails before
// any file or cryptographic work begins. A MaxMemory of zero disables
// the bound; prefer an explicit budget such as 64 MiB.
//
// # Container Layout
//
// Encrypted output is ciphertext followed by the 16-byte tag. The
// minimum valid container is 16 bytes (empty plaintext). Tag
// verification always completes before any plaintext is released.
//
// # Status Codes
//
// Hosts that cannot consume Go errors can collapse any error from this
// package into a numeric status with Code:
//
//	err := filecrypt.DecryptFile(in, out, password, params)
//	status := filecrypt.Code(err) // 0 on success, 6 on bad password
//
// # Password Handling
//
// Every entry point zeroes the password slice before returning, on
// success and on failure. Pass a copy if the password is needed again.
package filecrypt

package errors

import "errors"

// Parameter errors indicate inputs rejected before any cryptographic work.
var (
	// ErrInvalidSaltLength indicates the salt is not exactly 16 bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrInvalidNonceLength indicates the nonce is not exactly 12 bytes.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidKeyLength indicates the key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidTagLength indicates the authentication tag is not exactly 16 bytes.
	ErrInvalidTagLength = errors.New("invalid authentication tag length")

	// ErrInvalidCostParameters indicates the scrypt cost parameters are out of range.
	ErrInvalidCostParameters = errors.New("invalid key derivation cost parameters")

	// ErrEmptyPassword indicates an empty password was supplied.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooShort indicates the password does not meet the minimum length.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrMalformedHex indicates a salt or nonce hex string has the wrong
	// length or contains non-hexadecimal characters.
	ErrMalformedHex = errors.New("malformed hex parameter")
)

// Resource errors indicate an operation was refused or aborted because a
// system resource was exhausted or unavailable.
var (
	// ErrMemoryLimitExceeded indicates the requested cost parameters would
	// exceed the configured memory bound.
	ErrMemoryLimitExceeded = errors.New("key derivation would exceed the memory limit")

	// ErrRandomUnavailable indicates the operating system randomness source failed.
	ErrRandomUnavailable = errors.New("secure randomness unavailable")
)

// Container errors indicate a byte container that cannot be decoded.
var (
	// ErrContainerTooSmall indicates the container is shorter than the
	// fixed sections it must carry.
	ErrContainerTooSmall = errors.New("container too small")
)

// Authentication errors indicate decryption inputs that fail verification.
var (
	// ErrAuthenticationFailed indicates tag verification failed: the
	// password is wrong or the container was modified. The two causes are
	// indistinguishable and no plaintext is ever released alongside it.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or corrupted data")
)

// File errors indicate issues reading inputs or writing outputs.
var (
	// ErrOutputExists indicates the output path already exists and
	// overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")

	// ErrInputNotFound indicates the input file could not be located.
	ErrInputNotFound = errors.New("input file not found")
)

package filecrypt

import (
	"errors"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// Numeric status codes for hosts that cannot consume Go errors.
const (
	CodeOK                = iota // success
	CodeInvalidParameters        // malformed hex, bad lengths, bad cost parameters
	CodeIoFailure                // input or output could not be read or written
	CodeKeyDerivation            // key derivation refused or failed
	CodeCipherInternal           // cipher machinery or randomness failure
	CodeContainerTooSmall        // container below the format minimum
	CodeAuthentication           // wrong password or corrupted data
)

// Code collapses an error from this package into a numeric status.
// A nil error maps to CodeOK. Errors that carry no recognized kind map
// to CodeIoFailure, since unclassified failures here originate from
// file operations.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, sberrors.ErrMalformedHex),
		errors.Is(err, sberrors.ErrInvalidSaltLength),
		errors.Is(err, sberrors.ErrInvalidNonceLength),
		errors.Is(err, sberrors.ErrInvalidKeyLength),
		errors.Is(err, sberrors.ErrInvalidTagLength),
		errors.Is(err, sberrors.ErrInvalidCostParameters),
		errors.Is(err, sberrors.ErrEmptyPassword),
		errors.Is(err, sberrors.ErrPasswordTooShort):
		return CodeInvalidParameters
	case errors.Is(err, sberrors.ErrMemoryLimitExceeded):
		return CodeKeyDerivation
	case errors.Is(err, sberrors.ErrRandomUnavailable):
		return CodeCipherInternal
	case errors.Is(err, sberrors.ErrContainerTooSmall):
		return CodeContainerTooSmall
	case errors.Is(err, sberrors.ErrAuthenticationFailed):
		return CodeAuthentication
	default:
		return CodeIoFailure
	}
}

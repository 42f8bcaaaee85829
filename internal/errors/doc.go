// Package errors provides typed error values for the sealbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Parameter errors: Inputs rejected before any cryptographic work
//     (ErrInvalidSaltLength, ErrInvalidCostParameters, ErrMalformedHex)
//   - Resource errors: Exhausted or unavailable system resources
//     (ErrMemoryLimitExceeded, ErrRandomUnavailable)
//   - Container errors: Undecodable byte containers (ErrContainerTooSmall)
//   - Authentication errors: Failed tag verification (ErrAuthenticationFailed)
//   - File errors: Input/output path issues (ErrOutputExists)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(salt) != SaltSize {
//	    return nil, errors.ErrInvalidSaltLength
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, sberrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrInputNotFound)
package errors

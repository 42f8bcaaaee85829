// Package workflows provides high-level orchestration for Sealbox commands.
//
// Workflows coordinate multiple operations across packages (configs, seal,
// audit) to implement complete user-facing features. Each workflow handles
// a single command's business logic, independent of CLI concerns like flag
// parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Acquires the password from the terminal or environment
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Enforcing the password policy
//   - Reading inputs and writing outputs
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Encrypt: Seals a file into a password-protected container
//   - Decrypt: Opens a sealed container back into the original file
//   - Inspect: Decodes a container's structure without a password
//   - Log: Reads and filters the local operation log
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, sberrors.ErrOutputExists) {
//	    // Suggest --force
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This enables cancellation, timeouts, and passing request-scoped values.
package workflows

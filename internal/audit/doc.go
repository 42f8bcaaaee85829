// Package audit provides operation logging for sealbox.
//
// Every completed encrypt and decrypt operation is recorded in a
// user-level log. This helps answer what was sealed or opened on this
// machine and when, without recording anything sensitive.
//
// # Log Format
//
// The log is stored as JSON Lines (one JSON object per line) under the
// user data directory:
//
//	~/.local/share/sealbox/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - A random entry ID and the OS username
//   - Operation name (encrypt or decrypt)
//   - Input/output paths, plaintext size, cost parameters, duration
//
// Passwords, keys, salts, and file contents are never logged.
//
// # Usage
//
// Create an entry with identity fields pre-populated:
//
//	entry := audit.NewEntry("encrypt")
//	entry.Input = inputPath
//	entry.Output = outputPath
//	audit.Log(entry)
//
// # Failure Handling
//
// Logging is best-effort. If it fails (permissions, disk full, etc.),
// the operation continues without error. Operations never fail just
// because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the log for display or analysis.
// Malformed lines are silently skipped to handle partial writes.
package audit

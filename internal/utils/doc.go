// Package utils provides shared utility functions for the sealbox
// application.
//
// # Terminal Utilities
//
// Functions for reading passwords without echo and detecting
// terminals:
//   - ReadPassphrase: prompts on stdin when it is a terminal
//   - ReadPassphraseFromTTY: prompts on /dev/tty when stdin is busy
//   - IsTerminal, IsTTYAvailable: capability checks
//
// # I/O Utilities
//
//   - ReadPasswordLine: reads a password line from piped input
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # String Utilities
//
//   - FormatBytes: formats byte counts for human-readable output
package utils

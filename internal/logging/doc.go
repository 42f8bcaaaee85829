// Package logger provides structured logging for sealbox CLI commands.
//
// The logger supports multiple verbosity levels controlled by
// command-line flags. Output is formatted with semantic color prefixes.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings are shown.
//
// # Log Methods
//
//	Logger.Infof()        // Shown with --verbose or --debug
//	Logger.Debugf()       // Shown only with --debug
//	Logger.Warnf()        // Shown with --verbose or --debug
//	Logger.WarnfAlways()  // Always shown (critical warnings)
//	Logger.Errorf()       // Shown with --debug
//	Logger.ErrorfAndReturn() // Logs, then returns the error for RunE
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Sealed %d bytes", n)
//
// Commands create a logger in the root command's PersistentPreRun and
// share it across the cmd package.
//
// Log messages never include passwords, derived keys, or file contents.
package logger

// Package logging provides structured logging for the bandcode tools.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the CLI. Logging is silent by default so that
// command output stays clean; set BANDCODE_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed conversion tracing (parse results, band assembly)
//   - Info: Normal operations
//   - Warn: Non-fatal issues (malformed config entries)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("Conversion completed",
//	    zap.String("direction", "specs_to_colors"),
//	    zap.String("input", "4k7"),
//	    zap.Int("band_count", 4),
//	)
//
// # Configuration
//
// Initialize logging at command startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr so they never interleave with command output on
// stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging

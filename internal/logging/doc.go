// Package logging provides structured logging for the weather application.
//
// This package wraps a global zap logger with convenience functions for the
// logging patterns used throughout the application: effect lifecycle,
// remote API requests and settings persistence.
//
// # Log Levels
//
//   - Debug: Request URLs, effect start/finish, watcher events
//   - Info: Settings changes, successful lookups
//   - Warn: Non-fatal failures surfaced to the user (lookup/fetch errors,
//     URL launch failures)
//   - Error: Persistence failures (never shown in the UI)
//
// # Configuration
//
// Logging is silent unless a level is given, either directly or through the
// WEATHER_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize("debug", logPath); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// While the terminal UI is running stdout belongs to the renderer, so the
// interactive command always passes a file path. CLI subcommands may log to
// stderr.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use; effects log from their
// own goroutines.
package logging

// Package logging provides structured logging for the luxtap tool.
//
// This package owns the global zap logger and the logging helpers the CLI
// uses for registry traffic. By default it is silent so command output
// stays clean; set LUXTAP_LOG_LEVEL to turn on diagnostics.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Registry enumeration traffic, per-sensor read attempts
//   - Info: Normal operations
//   - Warn: Non-fatal issues (failed registry queries)
//   - Error: Fatal issues (startup failures)
//
// # Domain Logging
//
// The package provides helpers for the two events worth tracing:
//
//	logging.LogRegistryQuery("IOService", 2, nil)
//	logging.LogSensorRead("AmbientLightSensor", 42.5, nil)
//
// The accessor layer itself logs through an injected *zap.Logger; pass it
// logging.GetLogger() so its debug traces share the global configuration.
//
// # Configuration
//
// Initialize logging at command startup; an empty level defers to the
// LUXTAP_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Diagnostics go to stderr so they never mix with report output on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging

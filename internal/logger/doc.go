// Package logger provides a small levelled logger for diagnostics.
//
// The logger supports four levels: Debug, Info, Warn, and Error.
// Each entry carries a timestamp, the level, an optional scope tag, and
// the message. The quiz uses the scope to tag lines with the session ID.
//
// # Basic Usage
//
// Using the default logger:
//
//	logger.Error("session aborted: %v", err)
//
// Creating a scoped logger:
//
//	l := logger.New(os.Stderr, logger.LevelDebug).With(sessionID)
//	l.Debug("scenario %d graded", id)
//
// # Output
//
// Default writes to stderr at LevelWarn so diagnostics never interleave
// with the quiz protocol on stdout.
//
// # Thread Safety
//
// Loggers derived with With share one mutex-protected sink and are safe
// for concurrent use.
package logger

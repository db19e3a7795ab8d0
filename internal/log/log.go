package log

import "sync/atomic"

// defaultLogger backs the package level functions.  Services log through these so a session id attached in main
// follows every record without threading a logger through each constructor.
var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger replaces the logger used by the package level functions.  nil silences them.
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// DefaultLogger returns the current default logger, which may be nil
func DefaultLogger() *Logger {
	return defaultLogger.Load()
}

// Debug logs at debug level using the default logger
func Debug(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs at info level using the default logger
func Info(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level using the default logger
func Warn(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level using the default logger
func Error(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Error(msg, args...)
	}
}

// Trace logs per-command detail using the default logger.  See (*Logger).Trace.
func Trace(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Trace(msg, args...)
	}
}

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// tracePrefix marks records written by Trace.  slog has no trace level so they go out at debug.
const tracePrefix = "TRACE: "

// Logger writes JSON records to reel's log file
type Logger struct {
	logger       *slog.Logger
	file         *os.File
	traceEnabled bool
}

// Config contains logging information used to set up the logging framework
type Config struct {
	// Log level.  One of: trace, debug, info, warn, error
	Level string
	// Path to the file to log into.  Empty discards all output.
	FilePath string
}

// levels maps configured level names onto slog levels.  Unknown names fall back to info.
var levels = map[string]slog.Level{
	"trace": slog.LevelDebug,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func New(config Config) (*Logger, error) {
	level := strings.ToLower(config.Level)
	slogLevel, ok := levels[level]
	if !ok {
		slogLevel = slog.LevelInfo
	}

	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, file = f, f
	}

	return &Logger{
		logger:       slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel})),
		file:         file,
		traceEnabled: level == "trace",
	}, nil
}

// With returns a logger that adds the given attributes to every record.  The returned logger shares the log file
// with its parent, only the parent should be closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		logger:       l.logger.With(args...),
		traceEnabled: l.traceEnabled,
	}
}

// Close the log file
func (l *Logger) Close() {
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
	l.file = nil
}

func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

// Trace logs at debug level, but only when the configured level was "trace"
func (l *Logger) Trace(msg string, args ...any) {
	if l.traceEnabled {
		l.log(slog.LevelDebug, tracePrefix+msg, args)
	}
}

func (l *Logger) log(level slog.Level, msg string, args []any) {
	l.logger.Log(context.Background(), level, msg, args...)
}

// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the CALC_DEBUG environment variable:
//
//	export CALC_DEBUG=1
//
// Logs always go to stderr so stdout stays free for calculator output and
// the MCP stdio stream.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger

	level = new(slog.LevelVar)
)

func init() {
	if DebugEnabled(os.Getenv("CALC_DEBUG")) {
		level.Set(slog.LevelDebug)
	}
	SetOutput(os.Stderr)
}

// DebugEnabled reports whether a CALC_DEBUG value turns on debug logging.
// Any value except "", "0" and "false" (in any case) does.
func DebugEnabled(value string) bool {
	return value != "" && strings.ToLower(value) != "false" && value != "0"
}

// SetOutput replaces the destination of the global logger.
func SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// SetDebug toggles debug level logging at runtime
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Package logging writes searchly's log file. The terminal belongs to the UI,
// so nothing is ever logged to stdout or stderr once the program starts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the process logger. It is nil until Init succeeds.
	Logger *log.Logger

	logFile *os.File
)

// New builds a logger that writes logfmt-style lines to w.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
		Prefix:          "searchly",
	}), nil
}

// Init opens path for appending and installs Logger.
func Init(path, level string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return err
	}
	logFile = f
	Logger = logger
	return nil
}

// Close flushes a final line and closes the file.
func Close() {
	if Logger != nil {
		Logger.Info("shutting down")
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = nil
}

// Info logs at info level.
func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Debug logs at debug level.
func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Warn logs at warn level.
func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs at error level.
func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

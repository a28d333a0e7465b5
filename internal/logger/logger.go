// Package logger holds the process-wide slog logger used by the ledgertree
// libraries and commands.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init is
// called with Enabled set.
var L = discard()

// closer releases the current log file, if any.
var closer io.Closer

const (
	logPrefix     = "ledgertree-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.ledgertree/logs
	Level   slog.Level // Minimum log level
	Writer  io.Writer  // If set, log JSON lines here instead of a file
}

// Init configures logging. Call from main before any log calls. Calling it
// again closes the previous log file.
func Init(opts Options) error {
	Close()

	if !opts.Enabled {
		L = discard()
		return nil
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Writer != nil {
		L = slog.New(slog.NewJSONHandler(opts.Writer, handlerOpts))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".ledgertree", "logs")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// best-effort
	cleanOldLogs(logDir, time.Now())

	f, err := os.OpenFile(FileName(logDir, time.Now()), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	closer = f

	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return nil
}

// Close flushes and closes the log file opened by Init. Logging is discarded
// afterwards.
func Close() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
		L = discard()
	}
}

// FileName returns the log file used on day now.
func FileName(logDir string, now time.Time) string {
	return filepath.Join(logDir, logPrefix+now.Format(dateLayout)+logSuffix)
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// ledgertree-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// With returns a logger tagged with a component name.
func With(component string) *slog.Logger { return L.With("component", component) }

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }

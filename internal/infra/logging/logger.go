// Package logging provides file-based logging for order sessions.
// Every session appends to a single log file (<dir>/counter.log); lines are
// tagged with the session ID so interleaved runs can be told apart.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/runoshun/makkah-counter/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled session events to a log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file      *os.File
	now       func() time.Time
	logDir    string
	sessionID string
	mu        sync.Mutex
	level     slog.Level
}

// New creates a new Logger that writes to logDir.
// If logDir is empty, logging is disabled (returns a no-op logger).
// The file is opened lazily on the first entry at or above level.
func New(logDir, sessionID string, level slog.Level) *Logger {
	return &Logger{
		logDir:    logDir,
		sessionID: sessionID,
		level:     level,
		now:       time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the session log file.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(l.logDir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := domain.SessionLogPath(l.logDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if it was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [session-1a2b3c4d] [round-2] [category] message
func formatLog(t time.Time, level slog.Level, sessionID string, round int, category, msg string) string {
	roundStr := "session"
	if round > 0 {
		roundStr = fmt.Sprintf("round-%d", round)
	}
	return fmt.Sprintf("[%s] [%s] [session-%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		domain.ShortSessionID(sessionID),
		roundStr,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, round int, category, msg string) {
	if l.logDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, l.sessionID, round, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Logging must never interrupt the order, so write failures are dropped.
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(round int, category, msg string) {
	l.log(slog.LevelInfo, round, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(round int, category, msg string) {
	l.log(slog.LevelDebug, round, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(round int, category, msg string) {
	l.log(slog.LevelWarn, round, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(round int, category, msg string) {
	l.log(slog.LevelError, round, category, msg)
}

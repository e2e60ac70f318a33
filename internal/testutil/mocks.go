// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/makkah-counter/internal/domain"
)

// ScriptedReader is a test double for domain.LineReader that replays fixed lines.
// Fields are ordered to minimize memory padding.
type ScriptedReader struct {
	Err      error         // Returned once Lines is exhausted; defaults to domain.ErrInputClosed
	LineErrs map[int]error // Returned instead of the line at that index
	Lines    []string
	Reads    int
}

// NewScriptedReader creates a ScriptedReader replaying lines in order.
func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{Lines: lines}
}

// ReadLine returns the next scripted line.
func (r *ScriptedReader) ReadLine() (string, error) {
	if r.Reads >= len(r.Lines) {
		if r.Err != nil {
			return "", r.Err
		}
		return "", domain.ErrInputClosed
	}
	i := r.Reads
	r.Reads++
	if err, ok := r.LineErrs[i]; ok {
		return "", err
	}
	return r.Lines[i], nil
}

// LogEntry is one call recorded by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	Round    int
}

// String formats the entry as "LEVEL round category: msg".
func (e LogEntry) String() string {
	return fmt.Sprintf("%s %d %s: %s", e.Level, e.Round, e.Category, e.Msg)
}

// RecordingLogger is a test double for domain.Logger that keeps every entry.
type RecordingLogger struct {
	Entries []LogEntry
}

func (l *RecordingLogger) record(level string, round int, category, msg string) {
	l.Entries = append(l.Entries, LogEntry{Level: level, Round: round, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(round int, category, msg string) { l.record("DEBUG", round, category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(round int, category, msg string) { l.record("INFO", round, category, msg) }

// Warn records a warn entry.
func (l *RecordingLogger) Warn(round int, category, msg string) { l.record("WARN", round, category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(round int, category, msg string) { l.record("ERROR", round, category, msg) }

// Levels returns the level of every recorded entry in order.
func (l *RecordingLogger) Levels() []string {
	levels := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		levels[i] = e.Level
	}
	return levels
}

// Ensure test doubles implement their ports.
var (
	_ domain.LineReader = (*ScriptedReader)(nil)
	_ domain.Logger     = (*RecordingLogger)(nil)
)

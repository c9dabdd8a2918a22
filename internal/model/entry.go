package model

import (
	"fmt"
	"strings"
	"time"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelDebug LogLevel = "DEBUG"
)

// ParseLevel validates a caller-supplied level string against the four
// accepted levels.
func ParseLevel(s string) (LogLevel, error) {
	switch LogLevel(strings.ToUpper(s)) {
	case LogLevelInfo:
		return LogLevelInfo, nil
	case LogLevelWarn:
		return LogLevelWarn, nil
	case LogLevelError:
		return LogLevelError, nil
	case LogLevelDebug:
		return LogLevelDebug, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// LogEntry is one immutable line of a log file. Timestamp is kept as the
// RFC 3339 string that was (or will be) written, not a time.Time, so that
// read-back returns exactly what is on disk.
type LogEntry struct {
	Timestamp string   `json:"timestamp"`
	Level     LogLevel `json:"level"`
	Message   string   `json:"message"`
}

// Line renders the entry in the on-disk format, without a trailing newline.
// Entries without a level are foreign lines read back from disk; those
// round-trip verbatim.
func (e LogEntry) Line() string {
	if e.Level == "" {
		return e.Message
	}
	return fmt.Sprintf("[%s] [%s] %s", e.Timestamp, e.Level, e.Message)
}

// ParseLine parses a line in the on-disk format back into an entry. Lines
// that do not match the format (foreign content in a log file) report ok as
// false; they are still returned by unfiltered reads as raw messages.
func ParseLine(line string) (LogEntry, bool) {
	if !strings.HasPrefix(line, "[") {
		return LogEntry{Message: line}, false
	}
	rest := line[1:]
	tsEnd := strings.Index(rest, "] [")
	if tsEnd < 0 {
		return LogEntry{Message: line}, false
	}
	ts := rest[:tsEnd]
	rest = rest[tsEnd+3:]
	lvlEnd := strings.Index(rest, "] ")
	if lvlEnd < 0 {
		return LogEntry{Message: line}, false
	}
	level, err := ParseLevel(rest[:lvlEnd])
	if err != nil {
		return LogEntry{Message: line}, false
	}
	return LogEntry{
		Timestamp: ts,
		Level:     level,
		Message:   rest[lvlEnd+2:],
	}, true
}

// ValidateLogName rejects names that would escape the base log directory.
func ValidateLogName(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %s", ErrInvalidLogName, name)
	}
	if name == ".." || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %s", ErrInvalidLogName, name)
	}
	return nil
}

// ValidateTimestamp checks that a caller-supplied timestamp is RFC 3339 so
// the file stays machine parseable.
func ValidateTimestamp(ts string) error {
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, ts)
	}
	return nil
}

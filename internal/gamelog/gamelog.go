// Package gamelog is the player-facing message history.
package gamelog

import (
	"fmt"
	"strings"
)

// Log is an append-only list of messages. Nothing is ever dropped; callers
// choose how many recent lines to show.
type Log struct {
	entries []string
}

// New returns a log seeded with the given lines.
func New(lines ...string) *Log {
	return &Log{entries: append([]string(nil), lines...)}
}

func (l *Log) Add(msg string) {
	l.entries = append(l.entries, msg)
}

func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns a copy of every message, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Recent returns up to n most recent messages, oldest first.
func (l *Log) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.entries)-n)
	return append([]string(nil), l.entries[start:]...)
}

// Last returns the newest message, or "" when empty.
func (l *Log) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}

func (l *Log) Len() int { return len(l.entries) }

// Contains reports whether any message contains substr.
func (l *Log) Contains(substr string) bool {
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

package logger

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
}

// Recorder is a Logger that keeps every message in memory.
// It is meant for tests that assert on what was logged.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Logf records an informational message.
func (r *Recorder) Logf(format string, args ...interface{}) {
	r.add(LevelInfo, format, args...)
}

// Warnf records a warning.
func (r *Recorder) Warnf(format string, args ...interface{}) {
	r.add(LevelWarn, format, args...)
}

// Debugf records a debug message.
func (r *Recorder) Debugf(format string, args ...interface{}) {
	r.add(LevelDebug, format, args...)
}

// Errorf records an error message.
func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.add(LevelError, format, args...)
}

func (r *Recorder) add(level Level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Contains reports whether any recorded message contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, e := range r.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

package log

import (
	"sync"
)

// TestEntry represents a captured log entry for testing
type TestEntry struct {
	Level   Level
	Message string
	Fields  []Field
}

// TestLogger is a Logger implementation for testing that captures logs
// without producing output and provides methods to verify logging behavior.
type TestLogger struct {
	mu      sync.Mutex
	entries []TestEntry
	fields  []Field
	level   Level

	// root points at the logger entries are recorded on, so loggers derived
	// via With share one capture buffer.
	root *TestLogger
}

// NewTestLogger creates a new TestLogger for use in unit tests
func NewTestLogger() *TestLogger {
	return &TestLogger{
		level: DebugLevel,
	}
}

// Entries returns all captured log entries
func (l *TestLogger) Entries() []TestEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]TestEntry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Clear removes all captured log entries
func (l *TestLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *TestLogger) record(level Level, msg string, fields []Field) {
	sink := l
	if l.root != nil {
		sink = l.root
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.entries = append(sink.entries, TestEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, l.fields...), fields...),
	})
}

// Debug captures a debug message
func (l *TestLogger) Debug(msg string, fields ...Field) {
	if l.level <= DebugLevel {
		l.record(DebugLevel, msg, fields)
	}
}

// Info captures an info message
func (l *TestLogger) Info(msg string, fields ...Field) {
	if l.level <= InfoLevel {
		l.record(InfoLevel, msg, fields)
	}
}

// Warn captures a warn message
func (l *TestLogger) Warn(msg string, fields ...Field) {
	if l.level <= WarnLevel {
		l.record(WarnLevel, msg, fields)
	}
}

// Error captures an error message
func (l *TestLogger) Error(msg string, fields ...Field) {
	if l.level <= ErrorLevel {
		l.record(ErrorLevel, msg, fields)
	}
}

// Fatal captures a fatal message without exiting
func (l *TestLogger) Fatal(msg string, fields ...Field) {
	l.record(FatalLevel, msg, fields)
}

// With returns a logger that includes the given fields on every entry
func (l *TestLogger) With(fields ...Field) Logger {
	root := l.root
	if root == nil {
		root = l
	}
	return &TestLogger{
		level:  l.level,
		fields: append(append([]Field{}, l.fields...), fields...),
		root:   root,
	}
}

// WithComponent tags logs with a component name
func (l *TestLogger) WithComponent(component string) Logger {
	return l.With(Str(ComponentKey, component))
}

// SetLevel sets the minimum log level
func (l *TestLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

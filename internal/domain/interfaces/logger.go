// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

// VerbosePrefix marks diagnostic trace lines emitted in verbose mode
const VerbosePrefix = "[VERBOSE] "

// Logger defines the interface for structured logging.
// Verification code logs through it and never writes to stdout directly.
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Info logs informational messages
	Info(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)

	// Error logs error messages
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger is a logger that does nothing (useful for tests)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing (no-op implementation)
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing (no-op implementation)
func (n *NoOpLogger) Error(_ string, _ ...Field) {}

// Entry is a single message captured by MemoryLogger
type Entry struct {
	Level   string
	Message string
	Fields  []Field
}

// MemoryLogger records every message it receives (useful for tests)
type MemoryLogger struct {
	Entries []Entry
}

// Debug records a debug-level message
func (m *MemoryLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info records an informational message
func (m *MemoryLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn records a warning message
func (m *MemoryLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error records an error message
func (m *MemoryLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

func (m *MemoryLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, Entry{Level: level, Message: msg, Fields: fields})
}

// Messages returns the recorded messages in order
func (m *MemoryLogger) Messages() []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Message)
	}
	return out
}

// Package charmlog adapts github.com/charmbracelet/log to the domain Logger.
package charmlog

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/ochairo/prodverify/internal/domain/interfaces"
)

// Logger implements interfaces.Logger on top of a charm logger
type Logger struct {
	logger *log.Logger
}

// New creates a logger writing to w. Verbose enables debug-level output.
func New(w io.Writer, verbose bool) *Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return &Logger{
		logger: log.NewWithOptions(w, log.Options{
			Prefix: "prodverify",
			Level:  level,
		}),
	}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, keyvals(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, keyvals(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, keyvals(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, keyvals(fields)...)
}

func keyvals(fields []interfaces.Field) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	kv := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

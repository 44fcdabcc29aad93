package logging

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled progress messages for the CLI. Debug messages are
// dropped unless verbose output was requested.
type Logger struct {
	*log.Logger
	verbose bool
}

// NewLogger creates a Logger that writes to stderr so reports on stdout stay
// machine readable
func NewLogger(verbose bool) *Logger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo creates a Logger that writes to w
func NewLoggerTo(w io.Writer, verbose bool) *Logger {
	return &Logger{
		Logger:  log.New(w, "", log.LstdFlags),
		verbose: verbose,
	}
}

// Discard returns a Logger that drops every message
func Discard() *Logger {
	return NewLoggerTo(io.Discard, false)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Printf("INFO: "+msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Printf("ERROR: "+msg, args...)
}

// Debug logs a debug message when verbose.
func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.Printf("DEBUG: "+msg, args...)
}

// Package logging provides a logging abstraction layer that decouples the application
// from specific logging frameworks. Components receive a Logger through their
// constructors; tests pass a MockLogger.
package logging

// Logger is the structured logger every component receives.
// Implementations attach fields and error context to each entry.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a child logger carrying err; the receiver is unchanged
	WithError(err error) Logger

	// WithField returns a child logger carrying one field
	WithField(key string, value interface{}) Logger

	// WithFields returns a child logger carrying all given fields
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
// Fields keep identifiers such as file, page and rectangle out of the message text.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
//
// Parameters:
//   - key: The field name, usually one of the Field* constants
//   - value: The field value
//
// Returns:
//   - Field: The assembled key-value pair
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

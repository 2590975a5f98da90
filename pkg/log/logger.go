package log

// Logger provides structured logging capabilities.
type Logger interface {
	// Debug logs per-frame detail, shown in verbose mode.
	Debug(msg string, fields ...Field)

	// Info logs batch progress.
	Info(msg string, fields ...Field)

	// Warn logs non-fatal problems such as alignment conflicts.
	Warn(msg string, fields ...Field)

	// Error logs failures.
	Error(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

package log

var _ Logger = NoopLogger{}

// NoopLogger drops every message. It is the default for library callers
// that do not pass a logger.
type NoopLogger struct{}

// NewNoopLogger returns a logger that discards all output.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(string, ...Field) {}
func (NoopLogger) Info(string, ...Field)  {}
func (NoopLogger) Warn(string, ...Field)  {}
func (NoopLogger) Error(string, ...Field) {}

package logger

// NoOpLogger discards every entry.
type NoOpLogger struct{}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) Debug(string, ...Field) {}
func (n *NoOpLogger) Info(string, ...Field)  {}
func (n *NoOpLogger) Warn(string, ...Field)  {}
func (n *NoOpLogger) Error(string, ...Field) {}
func (n *NoOpLogger) With(...Field) Logger   { return n }
func (n *NoOpLogger) Sync() error            { return nil }

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NewNop()
	}
	return l
}

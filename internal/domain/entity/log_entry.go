package entity

// LogEntry is the message and level handed to each sink for a single call.
// It is never stored beyond the call.
type LogEntry struct {
	Message string
	Level   Severity
}

// NewLogEntry creates a log entry
func NewLogEntry(message string, level Severity) LogEntry {
	return LogEntry{
		Message: message,
		Level:   level,
	}
}

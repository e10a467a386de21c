package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest  = 4000
	CodeUnknownSeverity = 4001
	CodeInvalidLevel    = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeConfiguration  = 5001
	CodeSinkWrite      = 5020
)

// Base error types
var (
	// ErrConfiguration is returned when the dispatcher configuration cannot emit anything
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidLevel is returned when the message level or the configured threshold is None
	ErrInvalidLevel = errors.New("error or warning or message must be specified")

	// ErrSinkWrite is returned when a sink fails to persist or display a message
	ErrSinkWrite = errors.New("sink write failed")

	// ErrUnknownSeverity is returned when a severity name cannot be parsed
	ErrUnknownSeverity = errors.New("unknown severity")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidLevel):
		return CodeInvalidLevel
	case errors.Is(err, ErrUnknownSeverity):
		return CodeUnknownSeverity
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrSinkWrite):
		return CodeSinkWrite
	default:
		return CodeInternalServer
	}
}

// ConfigurationError describes why a configuration cannot be used to log
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Reason)
}

// Is checks if the target error is an ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// LogFields returns a map of fields for structured logging
func (e *ConfigurationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "configuration_error",
		"reason":     e.Reason,
		"error_code": CodeConfiguration,
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// InvalidLevelError reports a None level on the call or on the configured threshold.
// Levels are carried as names so this package stays free of entity imports.
type InvalidLevelError struct {
	Level     string
	Threshold string
}

// Error implements the error interface
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("%s (level: %s, threshold: %s)", ErrInvalidLevel.Error(), e.Level, e.Threshold)
}

// Is checks if the target error is an ErrInvalidLevel
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

// LogFields returns a map of fields for structured logging
func (e *InvalidLevelError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_level",
		"level":      e.Level,
		"threshold":  e.Threshold,
		"error_code": CodeInvalidLevel,
	}
}

// NewInvalidLevelError creates a new invalid level error
func NewInvalidLevelError(level, threshold string) error {
	return &InvalidLevelError{
		Level:     level,
		Threshold: threshold,
	}
}

// SinkWriteError wraps the failure of a single sink
type SinkWriteError struct {
	Sink  string
	Level string
	Err   error
}

// Error implements the error interface
func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("%s sink failed to write %s message: %v", e.Sink, e.Level, e.Err)
}

// Is checks if the target error is an ErrSinkWrite
func (e *SinkWriteError) Is(target error) bool {
	return target == ErrSinkWrite
}

// Unwrap returns the underlying error
func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SinkWriteError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "sink_write",
		"sink":       e.Sink,
		"level":      e.Level,
		"error_code": CodeSinkWrite,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewSinkWriteError creates a new sink write error
func NewSinkWriteError(sink, level string, err error) error {
	return &SinkWriteError{
		Sink:  sink,
		Level: level,
		Err:   err,
	}
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsInvalidLevelError checks if the error is an invalid level error
func IsInvalidLevelError(err error) bool {
	return errors.Is(err, ErrInvalidLevel)
}

// IsSinkWriteError checks if the error came from a sink
func IsSinkWriteError(err error) bool {
	return errors.Is(err, ErrSinkWrite)
}

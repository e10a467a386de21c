package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/job-logger/internal/domain/error"
)

// Severity is the ordered category of a log message
type Severity int

const (
	// SeverityNone is the unset sentinel, never valid for an emitted message
	SeverityNone Severity = iota
	// SeverityMessage for informational messages
	SeverityMessage
	// SeverityWarningError for warnings
	SeverityWarningError
	// SeverityError for errors
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityNone:         "None",
	SeverityMessage:      "Message",
	SeverityWarningError: "WarningError",
	SeverityError:        "Error",
}

// String returns the name persisted by the file and database sinks
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// IsValid reports whether s is a real emission level
func (s Severity) IsValid() bool {
	return s >= SeverityMessage && s <= SeverityError
}

// ParseSeverity converts a severity name or its numeric value into a Severity.
// Names are matched case-insensitively.
func ParseSeverity(value string) (Severity, error) {
	trimmed := strings.TrimSpace(value)

	if n, err := strconv.Atoi(trimmed); err == nil {
		s := Severity(n)
		if _, ok := severityNames[s]; ok {
			return s, nil
		}
		return SeverityNone, fmt.Errorf("%w: %q", errs.ErrUnknownSeverity, value)
	}

	for s, name := range severityNames {
		if strings.EqualFold(name, trimmed) {
			return s, nil
		}
	}

	return SeverityNone, fmt.Errorf("%w: %q", errs.ErrUnknownSeverity, value)
}

// PassesThreshold decides whether a message of the given level is emitted under threshold.
// The rule is per threshold, not a plain cutoff:
//   - Message emits only Message
//   - WarningError emits every real level
//   - Error emits only Error
func PassesThreshold(level, threshold Severity) bool {
	switch threshold {
	case SeverityMessage:
		return level == SeverityMessage
	case SeverityWarningError:
		return level >= SeverityMessage
	case SeverityError:
		return level == SeverityError
	default:
		return false
	}
}

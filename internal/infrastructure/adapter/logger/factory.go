package logger

import (
	"github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
)

// New picks the diagnostic logger for an environment
func New(environment string, level string) core.Logger {
	if environment == "test" {
		return NewNoopLogger()
	}
	return NewZapLogger(environment == "production", core.ParseLogLevel(level))
}

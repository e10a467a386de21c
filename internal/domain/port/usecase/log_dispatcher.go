package usecase

import (
	"context"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
)

// LogDispatcher defines the logging entry point used by callers
type LogDispatcher interface {
	// LogMessage validates, filters and fans a message out to the enabled sinks
	LogMessage(ctx context.Context, message string, level entity.Severity) error
}

package persistence

import (
	"context"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
)

// LogRepository persists log entries in the Log table
type LogRepository interface {
	// Insert stores a single entry as one row
	Insert(ctx context.Context, entry entity.LogEntry) error
}

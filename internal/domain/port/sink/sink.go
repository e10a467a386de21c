package sink

import (
	"context"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
)

// Names of the built-in sinks, in dispatch order
const (
	NameDatabase = "database"
	NameFile     = "file"
	NameConsole  = "console"
)

// Sink is a destination able to persist or display a log entry
type Sink interface {
	// Name identifies the sink in errors and diagnostics
	Name() string
	// Write emits a single entry; a non-nil error means the entry was not written
	Write(ctx context.Context, entry entity.LogEntry) error
}

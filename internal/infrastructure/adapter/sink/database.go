package sink

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/domain/port/persistence"
	sinkport "github.com/amirhossein-jamali/job-logger/internal/domain/port/sink"
)

// DatabaseSink inserts each entry as one row of the Log table
type DatabaseSink struct {
	repo         persistence.LogRepository
	clock        coreport.TimeProvider
	queryTimeout time.Duration
}

// NewDatabaseSink creates a database sink. A zero queryTimeout leaves inserts bounded
// only by the caller's context.
func NewDatabaseSink(repo persistence.LogRepository, clock coreport.TimeProvider, queryTimeout time.Duration) *DatabaseSink {
	return &DatabaseSink{
		repo:         repo,
		clock:        clock,
		queryTimeout: queryTimeout,
	}
}

// Name identifies the sink
func (s *DatabaseSink) Name() string {
	return sinkport.NameDatabase
}

// Write inserts the entry
func (s *DatabaseSink) Write(ctx context.Context, entry entity.LogEntry) error {
	ctx, cancel := s.clock.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.repo.Insert(ctx, entry)
}

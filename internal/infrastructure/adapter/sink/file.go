package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	sinkport "github.com/amirhossein-jamali/job-logger/internal/domain/port/sink"
	"github.com/puzpuzpuz/xsync/v3"
)

// DefaultDateFormat is the short date used in file names and line prefixes
const DefaultDateFormat = "2006-01-02"

// FileConfig configures the file sink
type FileConfig struct {
	Directory  string
	DateFormat string
}

// FileSink appends "{date} {level} {message}" lines to one file per calendar day.
// Earlier lines of the day are always preserved.
type FileSink struct {
	directory  string
	dateFormat string
	clock      coreport.TimeProvider
	locks      *xsync.MapOf[string, *sync.Mutex]
}

// NewFileSink creates a file sink writing under config.Directory
func NewFileSink(config FileConfig, clock coreport.TimeProvider) *FileSink {
	dateFormat := config.DateFormat
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	return &FileSink{
		directory:  config.Directory,
		dateFormat: dateFormat,
		clock:      clock,
		locks:      xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// Name identifies the sink
func (s *FileSink) Name() string {
	return sinkport.NameFile
}

// Path returns the log file for the day of t
func (s *FileSink) Path(t time.Time) string {
	return filepath.Join(s.directory, "LogFile"+t.Format(s.dateFormat)+".txt")
}

// lockFor returns the mutex serializing writes to path
func (s *FileSink) lockFor(path string) *sync.Mutex {
	lock, _ := s.locks.LoadOrCompute(path, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	return lock
}

// Write appends the entry to today's file, creating the directory and file when missing
func (s *FileSink) Write(_ context.Context, entry entity.LogEntry) error {
	now := s.clock.Now()
	path := s.Path(now)
	line := fmt.Sprintf("%s %s %s\n", now.Format(s.dateFormat), entry.Level.String(), entry.Message)

	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to log file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/job-logger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LogRepository implements the LogRepository interface using GORM
type LogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLogRepository creates a new LogRepository instance
func NewLogRepository(db *gorm.DB, logger coreport.Logger) *LogRepository {
	return &LogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a log entry to a database model
func (r *LogRepository) entityToModel(entry entity.LogEntry) model.LogRecord {
	return model.LogRecord{
		Message: entry.Message,
		Level:   entry.Level.String(),
	}
}

// Insert writes a single parameterized row into the Log table
func (r *LogRepository) Insert(ctx context.Context, entry entity.LogEntry) error {
	record := r.entityToModel(entry)

	result := r.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		errType := r.errorClassifier.Classify(result.Error)
		r.logger.Warn("Failed to insert log record", map[string]any{
			"level":      record.Level,
			"error":      result.Error.Error(),
			"error_type": string(errType),
		})

		if errType == ConnectionError {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		return fmt.Errorf("failed to insert log record: %w", result.Error)
	}

	r.logger.Debug("Log record inserted", map[string]any{
		"id":    record.ID,
		"level": record.Level,
	})

	return nil
}

package model

import (
	"time"
)

// LogRecord represents one row of the Log table
type LogRecord struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Message   string    `gorm:"not null;type:text"`
	Level     string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for LogRecord
func (LogRecord) TableName() string {
	return "Log"
}

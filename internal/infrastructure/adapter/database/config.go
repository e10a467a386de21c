package database

import (
	"errors"
	"fmt"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config represents database sink connection settings
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	DSNOverride     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	AutoMigrate     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
		AutoMigrate:     true,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validDrivers := map[string]bool{
		DriverPostgres: true,
		DriverMySQL:    true,
		DriverSQLite:   true,
	}
	if !validDrivers[c.Driver] {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	// A raw connection string replaces the individual settings
	if c.DSNOverride == "" {
		if c.Database == "" {
			return errors.New("database name is required")
		}
		if c.Driver != DriverSQLite {
			if c.Host == "" {
				return errors.New("database host is required")
			}
			if c.Port <= 0 || c.Port > 65535 {
				return fmt.Errorf("invalid port number: %d", c.Port)
			}
			if c.Username == "" {
				return errors.New("database username is required")
			}
		}
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout < 0 {
		return errors.New("query timeout must be non-negative")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the driver specific connection string
func (c *Config) DSN() string {
	if c.DSNOverride != "" {
		return c.DSNOverride
	}

	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	case DriverSQLite:
		return c.Database
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}
}

// isInMemory reports whether the sqlite database lives only inside the connection
func (c *Config) isInMemory() bool {
	return c.Driver == DriverSQLite && (c.DSN() == ":memory:" || c.DSN() == "file::memory:")
}

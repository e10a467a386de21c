package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Dispatcher  DispatcherConfig `mapstructure:"dispatcher"`
	Console     ConsoleConfig    `mapstructure:"console"`
	File        FileConfig       `mapstructure:"file"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DispatcherConfig selects the sinks and the threshold
type DispatcherConfig struct {
	LogToConsole        bool   `mapstructure:"logToConsole"`
	LogToFile           bool   `mapstructure:"logToFile"`
	LogToDatabase       bool   `mapstructure:"logToDatabase"`
	Threshold           string `mapstructure:"threshold"`
	ContinueOnSinkError bool   `mapstructure:"continueOnSinkError"`
}

// ConsoleConfig contains console sink settings
type ConsoleConfig struct {
	ColorMode  string `mapstructure:"colorMode"`
	DateFormat string `mapstructure:"dateFormat"`
}

// FileConfig contains file sink settings
type FileConfig struct {
	Directory  string `mapstructure:"directory"`
	DateFormat string `mapstructure:"dateFormat"`
}

// DatabaseConfig contains database sink connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains settings of the service's own diagnostic logger
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

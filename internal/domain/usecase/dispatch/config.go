package dispatch

import "github.com/amirhossein-jamali/job-logger/internal/domain/entity"

// Configuration selects the enabled sinks and the threshold.
// It is copied into the dispatcher on construction and never mutated afterwards.
type Configuration struct {
	LogToConsole  bool
	LogToFile     bool
	LogToDatabase bool
	Threshold     entity.Severity

	// ContinueOnSinkError attempts every enabled sink even after one fails,
	// returning the combined failures. By default the first failure aborts the rest.
	ContinueOnSinkError bool
}

// DefaultConfiguration returns console-only logging of errors
func DefaultConfiguration() Configuration {
	return Configuration{
		LogToConsole:  true,
		LogToFile:     false,
		LogToDatabase: false,
		Threshold:     entity.SeverityError,
	}
}

// anySinkEnabled reports whether at least one sink is switched on
func (c Configuration) anySinkEnabled() bool {
	return c.LogToConsole || c.LogToFile || c.LogToDatabase
}

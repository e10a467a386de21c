package config

import (
	"fmt"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	"github.com/amirhossein-jamali/job-logger/internal/domain/usecase/dispatch"
)

// DispatcherConfiguration converts the loaded settings into the dispatcher's value.
// A threshold of "None" is accepted here and rejected lazily by the dispatcher;
// only names that are not severities at all fail.
func (c *Config) DispatcherConfiguration() (dispatch.Configuration, error) {
	threshold, err := entity.ParseSeverity(c.Dispatcher.Threshold)
	if err != nil {
		return dispatch.Configuration{}, fmt.Errorf("dispatcher.threshold: %w", err)
	}

	return dispatch.Configuration{
		LogToConsole:        c.Dispatcher.LogToConsole,
		LogToFile:           c.Dispatcher.LogToFile,
		LogToDatabase:       c.Dispatcher.LogToDatabase,
		Threshold:           threshold,
		ContinueOnSinkError: c.Dispatcher.ContinueOnSinkError,
	}, nil
}

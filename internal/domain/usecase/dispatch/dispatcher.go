package dispatch

import (
	"context"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/job-logger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/domain/port/sink"
	"go.uber.org/multierr"
)

// Sinks holds the adapters the dispatcher may call. Only sinks enabled in the
// Configuration need to be set.
type Sinks struct {
	Database sink.Sink
	File     sink.Sink
	Console  sink.Sink
}

// LogDispatcher validates, filters and fans messages out to the configured sinks.
// It keeps no state between calls and is safe for concurrent use.
type LogDispatcher struct {
	config Configuration
	sinks  Sinks
	logger coreport.Logger
}

// target is an enabled sink slot in dispatch order
type target struct {
	name string
	sink sink.Sink
}

// NewLogDispatcher creates a dispatcher. The configuration is not validated here;
// problems are reported by LogMessage.
func NewLogDispatcher(config Configuration, sinks Sinks, logger coreport.Logger) *LogDispatcher {
	return &LogDispatcher{
		config: config,
		sinks:  sinks,
		logger: logger,
	}
}

// Configuration returns a copy of the dispatcher configuration
func (d *LogDispatcher) Configuration() Configuration {
	return d.config
}

// LogMessage emits message at level to every enabled sink when it passes the threshold.
// Empty or whitespace-only messages are ignored without error.
func (d *LogDispatcher) LogMessage(ctx context.Context, message string, level entity.Severity) error {
	ok, err := d.validate(message, level)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if !entity.PassesThreshold(level, d.config.Threshold) {
		d.logger.Debug("Message filtered by threshold", map[string]any{
			"level":     level.String(),
			"threshold": d.config.Threshold.String(),
		})
		return nil
	}

	return d.dispatch(ctx, entity.NewLogEntry(message, level))
}

// targets lists the enabled sinks in the fixed order database, file, console
func (d *LogDispatcher) targets() []target {
	targets := make([]target, 0, 3)
	if d.config.LogToDatabase {
		targets = append(targets, target{name: sink.NameDatabase, sink: d.sinks.Database})
	}
	if d.config.LogToFile {
		targets = append(targets, target{name: sink.NameFile, sink: d.sinks.File})
	}
	if d.config.LogToConsole {
		targets = append(targets, target{name: sink.NameConsole, sink: d.sinks.Console})
	}
	return targets
}

func (d *LogDispatcher) dispatch(ctx context.Context, entry entity.LogEntry) error {
	var combined error

	for _, t := range d.targets() {
		if err := t.sink.Write(ctx, entry); err != nil {
			sinkErr := &errs.SinkWriteError{Sink: t.name, Level: entry.Level.String(), Err: err}
			d.logger.Error("Sink write failed", sinkErr.LogFields())

			if !d.config.ContinueOnSinkError {
				return sinkErr
			}
			combined = multierr.Append(combined, sinkErr)
		}
	}

	return combined
}

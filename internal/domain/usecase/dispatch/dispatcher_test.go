package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/job-logger/internal/domain/error"
	"github.com/amirhossein-jamali/job-logger/internal/domain/port/sink"
	coremocks "github.com/amirhossein-jamali/job-logger/mocks/port/core"
	sinkmocks "github.com/amirhossein-jamali/job-logger/mocks/port/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// callRecorder collects sink invocations across fakes in call order
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *callRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// recordingSink is an instrumented fake that records every write
type recordingSink struct {
	name     string
	recorder *callRecorder
	err      error
	entries  []entity.LogEntry
}

func (s *recordingSink) Name() string {
	return s.name
}

func (s *recordingSink) Write(_ context.Context, entry entity.LogEntry) error {
	s.recorder.record(s.name)
	s.entries = append(s.entries, entry)
	return s.err
}

type fixture struct {
	recorder *callRecorder
	database *recordingSink
	file     *recordingSink
	console  *recordingSink
	logger   *coremocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	recorder := &callRecorder{}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return &fixture{
		recorder: recorder,
		database: &recordingSink{name: sink.NameDatabase, recorder: recorder},
		file:     &recordingSink{name: sink.NameFile, recorder: recorder},
		console:  &recordingSink{name: sink.NameConsole, recorder: recorder},
		logger:   logger,
	}
}

func (f *fixture) dispatcher(config Configuration) *LogDispatcher {
	return NewLogDispatcher(config, Sinks{
		Database: f.database,
		File:     f.file,
		Console:  f.console,
	}, f.logger)
}

func allSinks(threshold entity.Severity) Configuration {
	return Configuration{
		LogToConsole:  true,
		LogToFile:     true,
		LogToDatabase: true,
		Threshold:     threshold,
	}
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.True(t, cfg.LogToConsole)
	assert.False(t, cfg.LogToFile)
	assert.False(t, cfg.LogToDatabase)
	assert.Equal(t, entity.SeverityError, cfg.Threshold)
	assert.False(t, cfg.ContinueOnSinkError)
}

func TestLogMessageValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("All sinks disabled fails with configuration error", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(Configuration{Threshold: entity.SeverityError})

		err := d.LogMessage(ctx, "test", entity.SeverityError)

		require.Error(t, err)
		assert.True(t, errs.IsConfigurationError(err))
		assert.Empty(t, f.recorder.Calls())
	})

	t.Run("None threshold fails with invalid level error", func(t *testing.T) {
		f := newFixture(t)
		cfg := DefaultConfiguration()
		cfg.Threshold = entity.SeverityNone
		d := f.dispatcher(cfg)

		err := d.LogMessage(ctx, "test", entity.SeverityError)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidLevelError(err))
		assert.Empty(t, f.recorder.Calls())
	})

	t.Run("None level fails with invalid level error", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(DefaultConfiguration())

		err := d.LogMessage(ctx, "test", entity.SeverityNone)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidLevelError(err))
		assert.Empty(t, f.recorder.Calls())
	})

	t.Run("Out of range level is treated as None", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(allSinks(entity.SeverityWarningError))

		err := d.LogMessage(ctx, "test", entity.Severity(7))

		assert.True(t, errs.IsInvalidLevelError(err))
		assert.Empty(t, f.recorder.Calls())
	})

	t.Run("None level fails regardless of sink configuration", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(allSinks(entity.SeverityWarningError))

		err := d.LogMessage(ctx, "test", entity.SeverityNone)

		var levelErr *errs.InvalidLevelError
		require.ErrorAs(t, err, &levelErr)
		assert.Equal(t, "None", levelErr.Level)
		assert.Equal(t, "WarningError", levelErr.Threshold)
	})

	t.Run("No sink check runs before level check", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(Configuration{Threshold: entity.SeverityNone})

		err := d.LogMessage(ctx, "test", entity.SeverityNone)

		assert.True(t, errs.IsConfigurationError(err))
	})

	t.Run("Enabled sink without adapter fails with configuration error", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		d := NewLogDispatcher(allSinks(entity.SeverityError), Sinks{}, logger)

		err := d.LogMessage(ctx, "test", entity.SeverityError)

		var cfgErr *errs.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "database, file, console")
	})
}

func TestLogMessageEmptyMessages(t *testing.T) {
	ctx := context.Background()

	configs := map[string]Configuration{
		"default":          DefaultConfiguration(),
		"all disabled":     {Threshold: entity.SeverityError},
		"none threshold":   {LogToConsole: true, Threshold: entity.SeverityNone},
		"all sinks enable": allSinks(entity.SeverityWarningError),
	}

	for name, cfg := range configs {
		for _, message := range []string{"", "   ", "\t\n "} {
			t.Run(name, func(t *testing.T) {
				f := newFixture(t)
				d := f.dispatcher(cfg)

				err := d.LogMessage(ctx, message, entity.SeverityError)

				assert.NoError(t, err)
				assert.Empty(t, f.recorder.Calls())
			})
		}
	}

	t.Run("Empty message with None level is ignored", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(DefaultConfiguration())

		assert.NoError(t, d.LogMessage(ctx, "", entity.SeverityNone))
	})
}

func TestLogMessageThreshold(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		threshold entity.Severity
		level     entity.Severity
		emitted   bool
	}{
		{entity.SeverityMessage, entity.SeverityMessage, true},
		{entity.SeverityMessage, entity.SeverityWarningError, false},
		{entity.SeverityMessage, entity.SeverityError, false},
		{entity.SeverityWarningError, entity.SeverityMessage, true},
		{entity.SeverityWarningError, entity.SeverityWarningError, true},
		{entity.SeverityWarningError, entity.SeverityError, true},
		{entity.SeverityError, entity.SeverityMessage, false},
		{entity.SeverityError, entity.SeverityWarningError, false},
		{entity.SeverityError, entity.SeverityError, true},
	}

	for _, tc := range testCases {
		t.Run(tc.threshold.String()+"/"+tc.level.String(), func(t *testing.T) {
			f := newFixture(t)
			cfg := DefaultConfiguration()
			cfg.Threshold = tc.threshold
			d := f.dispatcher(cfg)

			err := d.LogMessage(ctx, "payload", tc.level)

			require.NoError(t, err)
			if tc.emitted {
				assert.Equal(t, []string{sink.NameConsole}, f.recorder.Calls())
			} else {
				assert.Empty(t, f.recorder.Calls())
			}
		})
	}
}

func TestLogMessageDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Sinks are called database then file then console", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(allSinks(entity.SeverityError))

		err := d.LogMessage(ctx, "boom", entity.SeverityError)

		require.NoError(t, err)
		assert.Equal(t, []string{sink.NameDatabase, sink.NameFile, sink.NameConsole}, f.recorder.Calls())
	})

	t.Run("Only enabled sinks are called", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(Configuration{
			LogToConsole:  true,
			LogToDatabase: true,
			Threshold:     entity.SeverityWarningError,
		})

		err := d.LogMessage(ctx, "hello", entity.SeverityMessage)

		require.NoError(t, err)
		assert.Equal(t, []string{sink.NameDatabase, sink.NameConsole}, f.recorder.Calls())
	})

	t.Run("Original message is dispatched untrimmed", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(DefaultConfiguration())

		err := d.LogMessage(ctx, "  spaced out  ", entity.SeverityError)

		require.NoError(t, err)
		require.Len(t, f.console.entries, 1)
		assert.Equal(t, entity.NewLogEntry("  spaced out  ", entity.SeverityError), f.console.entries[0])
	})

	t.Run("Sink failure aborts remaining sinks", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("connection refused")
		f.database.err = dbErr
		d := f.dispatcher(allSinks(entity.SeverityError))

		err := d.LogMessage(ctx, "boom", entity.SeverityError)

		require.Error(t, err)
		assert.True(t, errs.IsSinkWriteError(err))
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, []string{sink.NameDatabase}, f.recorder.Calls())

		var sinkErr *errs.SinkWriteError
		require.ErrorAs(t, err, &sinkErr)
		assert.Equal(t, sink.NameDatabase, sinkErr.Sink)
		assert.Equal(t, "Error", sinkErr.Level)
	})

	t.Run("File failure still follows database", func(t *testing.T) {
		f := newFixture(t)
		f.file.err = errors.New("disk full")
		d := f.dispatcher(allSinks(entity.SeverityError))

		err := d.LogMessage(ctx, "boom", entity.SeverityError)

		require.Error(t, err)
		assert.Equal(t, []string{sink.NameDatabase, sink.NameFile}, f.recorder.Calls())
	})

	t.Run("ContinueOnSinkError attempts every sink", func(t *testing.T) {
		f := newFixture(t)
		f.database.err = errors.New("connection refused")
		f.file.err = errors.New("disk full")
		cfg := allSinks(entity.SeverityError)
		cfg.ContinueOnSinkError = true
		d := f.dispatcher(cfg)

		err := d.LogMessage(ctx, "boom", entity.SeverityError)

		require.Error(t, err)
		assert.Equal(t, []string{sink.NameDatabase, sink.NameFile, sink.NameConsole}, f.recorder.Calls())

		failures := multierr.Errors(err)
		require.Len(t, failures, 2)
		for _, failure := range failures {
			assert.True(t, errs.IsSinkWriteError(failure))
		}
	})

	t.Run("ContinueOnSinkError without failures returns nil", func(t *testing.T) {
		f := newFixture(t)
		cfg := allSinks(entity.SeverityWarningError)
		cfg.ContinueOnSinkError = true
		d := f.dispatcher(cfg)

		assert.NoError(t, d.LogMessage(ctx, "fine", entity.SeverityWarningError))
		assert.Len(t, f.recorder.Calls(), 3)
	})
}

func TestLogMessageDiagnostics(t *testing.T) {
	ctx := context.Background()

	t.Run("Filtered message is logged at debug", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		console := sinkmocks.NewMockSink(t)
		logger.EXPECT().Debug("Message filtered by threshold", map[string]any{
			"level":     "Message",
			"threshold": "Error",
		}).Once()

		d := NewLogDispatcher(DefaultConfiguration(), Sinks{Console: console}, logger)

		assert.NoError(t, d.LogMessage(ctx, "quiet", entity.SeverityMessage))
	})

	t.Run("Sink failure is logged at error", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		console := sinkmocks.NewMockSink(t)
		console.EXPECT().Write(mock.Anything, entity.NewLogEntry("loud", entity.SeverityError)).
			Return(errors.New("broken pipe")).Once()
		logger.EXPECT().Error("Sink write failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["sink"] == sink.NameConsole && fields["error"] == "broken pipe"
		})).Once()

		d := NewLogDispatcher(DefaultConfiguration(), Sinks{Console: console}, logger)

		err := d.LogMessage(ctx, "loud", entity.SeverityError)
		assert.True(t, errs.IsSinkWriteError(err))
	})
}

func TestLogMessageScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Scenario 1: all sinks disabled", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(Configuration{Threshold: entity.SeverityError})

		assert.ErrorIs(t, d.LogMessage(ctx, "test", entity.SeverityError), errs.ErrConfiguration)
	})

	t.Run("Scenario 2: None threshold with default console", func(t *testing.T) {
		f := newFixture(t)
		cfg := DefaultConfiguration()
		cfg.Threshold = entity.SeverityNone
		d := f.dispatcher(cfg)

		assert.ErrorIs(t, d.LogMessage(ctx, "test", entity.SeverityError), errs.ErrInvalidLevel)
	})

	t.Run("Scenario 3: None level", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(DefaultConfiguration())

		assert.ErrorIs(t, d.LogMessage(ctx, "test", entity.SeverityNone), errs.ErrInvalidLevel)
	})

	t.Run("Scenario 4: empty message", func(t *testing.T) {
		f := newFixture(t)
		d := f.dispatcher(DefaultConfiguration())

		assert.NoError(t, d.LogMessage(ctx, "", entity.SeverityError))
		assert.Empty(t, f.console.entries)
	})

	t.Run("Scenario 5: message under WarningError threshold", func(t *testing.T) {
		f := newFixture(t)
		cfg := DefaultConfiguration()
		cfg.Threshold = entity.SeverityWarningError
		d := f.dispatcher(cfg)

		require.NoError(t, d.LogMessage(ctx, "hi", entity.SeverityMessage))
		require.Len(t, f.console.entries, 1)
		assert.Equal(t, "hi", f.console.entries[0].Message)
		assert.Equal(t, entity.SeverityMessage, f.console.entries[0].Level)
	})
}

func TestLogDispatcherConfigurationIsCopied(t *testing.T) {
	f := newFixture(t)
	cfg := DefaultConfiguration()
	d := f.dispatcher(cfg)

	cfg.LogToConsole = false
	cfg.Threshold = entity.SeverityNone

	assert.Equal(t, DefaultConfiguration(), d.Configuration())
	assert.NoError(t, d.LogMessage(context.Background(), "still logs", entity.SeverityError))
}

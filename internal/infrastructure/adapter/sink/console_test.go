package sink

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/job-logger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleSinkWrite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	t.Run("Line is date followed by message without separator", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewConsoleSink(ConsoleConfig{Output: &buf, ColorMode: ColorNever}, fixedClock(t, now))

		require.NoError(t, s.Write(ctx, entity.NewLogEntry("hi", entity.SeverityMessage)))

		assert.Equal(t, "2026-10-19hi\n", buf.String())
	})

	t.Run("Colors follow severity and are never reset", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewConsoleSink(ConsoleConfig{Output: &buf, ColorMode: ColorAlways}, fixedClock(t, now))

		require.NoError(t, s.Write(ctx, entity.NewLogEntry("hi", entity.SeverityMessage)))
		require.NoError(t, s.Write(ctx, entity.NewLogEntry("careful", entity.SeverityWarningError)))
		require.NoError(t, s.Write(ctx, entity.NewLogEntry("boom", entity.SeverityError)))

		expected := ColorWhite + "2026-10-19hi\n" +
			ColorYellow + "2026-10-19careful\n" +
			ColorRed + "2026-10-19boom\n"
		assert.Equal(t, expected, buf.String())
		assert.NotContains(t, buf.String(), "\033[0m")
	})

	t.Run("Custom date format", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewConsoleSink(ConsoleConfig{Output: &buf, ColorMode: ColorNever, DateFormat: "01/02/2006 "}, fixedClock(t, now))

		require.NoError(t, s.Write(ctx, entity.NewLogEntry("hi", entity.SeverityError)))

		assert.Equal(t, "10/19/2026 hi\n", buf.String())
	})

	t.Run("Auto mode does not color plain writers", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewConsoleSink(ConsoleConfig{Output: &buf, ColorMode: ColorAuto}, fixedClock(t, now))

		require.NoError(t, s.Write(ctx, entity.NewLogEntry("plain", entity.SeverityError)))

		assert.Equal(t, "2026-10-19plain\n", buf.String())
	})

	t.Run("Writer failure is returned", func(t *testing.T) {
		s := NewConsoleSink(ConsoleConfig{Output: failingWriter{}}, fixedClock(t, now))

		err := s.Write(ctx, entity.NewLogEntry("lost", entity.SeverityError))

		assert.ErrorContains(t, err, "broken pipe")
	})
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, ColorWhite, LevelColor(entity.SeverityMessage))
	assert.Equal(t, ColorYellow, LevelColor(entity.SeverityWarningError))
	assert.Equal(t, ColorRed, LevelColor(entity.SeverityError))
	assert.Empty(t, LevelColor(entity.SeverityNone))
}

func TestConsoleSinkName(t *testing.T) {
	s := NewConsoleSink(ConsoleConfig{}, fixedClock(t, time.Now()))
	assert.Equal(t, "console", s.Name())
}

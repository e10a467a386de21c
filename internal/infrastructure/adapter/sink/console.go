package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	sinkport "github.com/amirhossein-jamali/job-logger/internal/domain/port/sink"
	"github.com/mattn/go-isatty"
)

// ANSI foreground colors used by the console sink
const (
	ColorWhite  = "\033[37m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
)

// ColorMode controls whether the console sink emits color codes
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// LevelColor returns the foreground color for a severity, or "" for None
func LevelColor(level entity.Severity) string {
	switch level {
	case entity.SeverityMessage:
		return ColorWhite
	case entity.SeverityWarningError:
		return ColorYellow
	case entity.SeverityError:
		return ColorRed
	default:
		return ""
	}
}

// ConsoleConfig configures the console sink
type ConsoleConfig struct {
	Output     io.Writer
	ColorMode  ColorMode
	DateFormat string
}

// ConsoleSink writes "{date}{message}" lines, switching the terminal color per severity.
// The color is never reset, so it sticks until the next line changes it.
type ConsoleSink struct {
	mu         sync.Mutex
	out        io.Writer
	colorize   bool
	dateFormat string
	clock      coreport.TimeProvider
}

// NewConsoleSink creates a console sink. A nil Output means stdout.
func NewConsoleSink(config ConsoleConfig, clock coreport.TimeProvider) *ConsoleSink {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	dateFormat := config.DateFormat
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	return &ConsoleSink{
		out:        out,
		colorize:   shouldColorize(out, config.ColorMode),
		dateFormat: dateFormat,
		clock:      clock,
	}
}

func shouldColorize(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Name identifies the sink
func (s *ConsoleSink) Name() string {
	return sinkport.NameConsole
}

// Write prints the entry on a single line
func (s *ConsoleSink) Write(_ context.Context, entry entity.LogEntry) error {
	line := s.clock.Now().Format(s.dateFormat) + entry.Message + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.colorize {
		line = LevelColor(entry.Level) + line
	}

	if _, err := io.WriteString(s.out, line); err != nil {
		return fmt.Errorf("failed to write console line: %w", err)
	}
	return nil
}

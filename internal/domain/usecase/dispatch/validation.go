package dispatch

import (
	"strings"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/job-logger/internal/domain/error"
)

// validate runs the per-call checks in order. It returns false with a nil error
// when there is nothing to log.
func (d *LogDispatcher) validate(message string, level entity.Severity) (bool, error) {
	// Content check only; the untrimmed message is what gets dispatched
	if strings.TrimSpace(message) == "" {
		return false, nil
	}

	if !d.config.anySinkEnabled() {
		return false, errs.NewConfigurationError("no sink enabled")
	}

	if !level.IsValid() || !d.config.Threshold.IsValid() {
		return false, errs.NewInvalidLevelError(level.String(), d.config.Threshold.String())
	}

	if err := d.validateWiring(); err != nil {
		return false, err
	}

	return true, nil
}

// validateWiring makes sure every enabled sink has an adapter behind it
func (d *LogDispatcher) validateWiring() error {
	var missing []string
	for _, t := range d.targets() {
		if t.sink == nil {
			missing = append(missing, t.name)
		}
	}
	if len(missing) > 0 {
		return errs.NewConfigurationError("enabled sink not wired: " + strings.Join(missing, ", "))
	}
	return nil
}

package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/job-logger/internal/domain/error"
)

// LogRequest represents the request body for POST /log
type LogRequest struct {
	Message string          `json:"message"`
	Level   json.RawMessage `json:"level"`
}

// Severity decodes the level, which may be sent as a name ("Error") or a number (3)
func (r LogRequest) Severity() (entity.Severity, error) {
	raw := strings.TrimSpace(string(r.Level))
	if raw == "" || raw == "null" {
		return entity.SeverityNone, fmt.Errorf("%w: level is required", domainerr.ErrInvalidRequest)
	}

	var name string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(r.Level, &name); err != nil {
			return entity.SeverityNone, fmt.Errorf("%w: %v", domainerr.ErrInvalidRequest, err)
		}
	} else {
		var number json.Number
		if err := json.Unmarshal(r.Level, &number); err != nil {
			return entity.SeverityNone, fmt.Errorf("%w: level must be a string or an integer", domainerr.ErrInvalidRequest)
		}
		name = number.String()
	}

	return entity.ParseSeverity(name)
}

// HealthResponse represents the response for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

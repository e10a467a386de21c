package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/job-logger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LogHandler hands messages received over HTTP to the dispatcher
type LogHandler struct {
	dispatcher usecase.LogDispatcher
	logger     coreport.Logger
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(dispatcher usecase.LogDispatcher, logger coreport.Logger) *LogHandler {
	return &LogHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// LogMessage handles the POST /log endpoint
func (h *LogHandler) LogMessage(c *gin.Context) {
	var req dto.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid log request body", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	level, err := req.Severity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	if err := h.dispatcher.LogMessage(c.Request.Context(), req.Message, level); err != nil {
		status := statusFor(err)
		fields := map[string]any{
			"error":  err.Error(),
			"level":  level.String(),
			"status": status,
		}
		var sinkErr *domainerr.SinkWriteError
		if errors.As(err, &sinkErr) {
			fields["sink"] = sinkErr.Sink
		}
		if status >= http.StatusInternalServerError {
			h.logger.Error("Failed to log message", fields)
		} else {
			h.logger.Warn("Log message rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Health handles the GET /health endpoint
func (h *LogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// statusFor maps dispatcher errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsInvalidLevelError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsConfigurationError(err):
		return http.StatusInternalServerError
	case domainerr.IsSinkWriteError(err):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrUnknownSeverity), errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

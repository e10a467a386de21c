package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerr "github.com/amirhossein-jamali/job-logger/internal/domain/error"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/dto"
	timeProvider "github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/job-logger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerRecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "sink exploded" && fields["path"] == "/log"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.POST("/log", func(c *gin.Context) {
		panic("sink exploded")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/log", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeInternalServer, resp.Code)
}

func TestLoggerLevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		status int
		expect func(l *coremocks.MockLogger)
	}{
		{"success", http.StatusNoContent, func(l *coremocks.MockLogger) {
			l.EXPECT().Info("Request processed", mock.Anything).Once()
		}},
		{"client error", http.StatusUnprocessableEntity, func(l *coremocks.MockLogger) {
			l.EXPECT().Warn("Request rejected", mock.Anything).Once()
		}},
		{"server error", http.StatusBadGateway, func(l *coremocks.MockLogger) {
			l.EXPECT().Error("Request failed", mock.MatchedBy(func(fields map[string]any) bool {
				return fields["status"] == http.StatusBadGateway && fields["status_text"] == "Server Error"
			})).Once()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := coremocks.NewMockLogger(t)
			tt.expect(logger)

			router := gin.New()
			router.Use(Logger(logger, timeProvider.NewRealTimeProvider()))
			router.POST("/log", func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/log", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

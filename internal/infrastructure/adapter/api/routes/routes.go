package routes

import (
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, logHandler *handler.LogHandler) {
	// POST /log
	router.POST("/log", logHandler.LogMessage)

	// GET /health
	router.GET("/health", logHandler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider) {
	// Recovery is registered first so it wraps every other handler
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, clock))
}

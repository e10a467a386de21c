package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/job-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/job-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/job-logger/internal/domain/usecase/dispatch"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/job-logger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/job-logger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	dispatchConfig, err := cfg.DispatcherConfiguration()
	if err != nil {
		log.Fatalf("Invalid dispatcher configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.New(cfg.Environment, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Only sinks enabled in the configuration are built
	sinks, closeSinks, err := buildSinks(cfg, dispatchConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialize sinks", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer closeSinks()

	dispatcher := dispatch.NewLogDispatcher(dispatchConfig, sinks, appLogger)
	logHandler := handler.NewLogHandler(dispatcher, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, logHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":      cfg.Server.Port,
			"env":       cfg.Environment,
			"console":   dispatchConfig.LogToConsole,
			"file":      dispatchConfig.LogToFile,
			"database":  dispatchConfig.LogToDatabase,
			"threshold": dispatchConfig.Threshold.String(),
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildSinks wires the enabled sinks. The returned func releases their resources.
func buildSinks(
	cfg *config.Config,
	dispatchConfig dispatch.Configuration,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (dispatch.Sinks, func(), error) {
	var sinks dispatch.Sinks
	closeFn := func() {}

	if dispatchConfig.LogToConsole {
		sinks.Console = sink.NewConsoleSink(sink.ConsoleConfig{
			Output:     os.Stdout,
			ColorMode:  sink.ColorMode(strings.ToLower(cfg.Console.ColorMode)),
			DateFormat: cfg.Console.DateFormat,
		}, tp)
	}

	if dispatchConfig.LogToFile {
		sinks.File = sink.NewFileSink(sink.FileConfig{
			Directory:  cfg.File.Directory,
			DateFormat: cfg.File.DateFormat,
		}, tp)
	}

	if dispatchConfig.LogToDatabase {
		dbManager := database.NewManager(database.ConfigFromApp(cfg), appLogger, tp)
		db, err := dbManager.Connect()
		if err != nil {
			return dispatch.Sinks{}, closeFn, fmt.Errorf("failed to connect to database: %w", err)
		}
		closeFn = func() {
			if err := dbManager.Close(); err != nil {
				appLogger.Warn("Failed to close database", map[string]any{
					"error": err.Error(),
				})
			}
		}

		repo := repository.NewLogRepository(db, appLogger)
		sinks.Database = sink.NewDatabaseSink(repo, tp, dbManager.QueryTimeout())
	}

	return sinks, closeFn, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// The file sink needs somewhere to write
	if cfg.Dispatcher.LogToFile && cfg.File.Directory == "" {
		missingConfigs = append(missingConfigs, "file.directory (or JL_LOG_FILE_DIRECTORY environment variable)")
	}

	// The database sink needs either a DSN or the individual connection settings
	if cfg.Dispatcher.LogToDatabase && cfg.Database.DSN == "" {
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or JL_DB_NAME / JL_DB_DSN environment variable)")
		}
		if cfg.Database.Driver != database.DriverSQLite {
			if cfg.Database.Host == "" {
				missingConfigs = append(missingConfigs, "database.host (or JL_DB_HOST environment variable)")
			}
			if cfg.Database.Username == "" {
				missingConfigs = append(missingConfigs, "database.username (or JL_DB_USERNAME environment variable)")
			}
		}
	}

	if cfg.Dispatcher.Threshold == "" {
		missingConfigs = append(missingConfigs, "dispatcher.threshold")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	switch sink.ColorMode(strings.ToLower(cfg.Console.ColorMode)) {
	case sink.ColorAuto, sink.ColorAlways, sink.ColorNever, "":
	default:
		return fmt.Errorf("invalid console.colorMode: %s, must be one of: auto, always, or never", cfg.Console.ColorMode)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Dispatcher.LogToDatabase && cfg.Database.Driver == database.DriverPostgres {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if threshold, err := entity.ParseSeverity(cfg.Dispatcher.Threshold); err == nil && !threshold.IsValid() {
			warnings = append(warnings, "dispatcher.threshold is None, every message will be rejected")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asabig-talent-platform/config"
	"asabig-talent-platform/internal/dataset"
	deliveryHttp "asabig-talent-platform/internal/delivery/http"
	"asabig-talent-platform/internal/delivery/http/handler"
	"asabig-talent-platform/internal/delivery/http/middleware"
	"asabig-talent-platform/internal/infrastructure/cache"
	"asabig-talent-platform/internal/infrastructure/database"
	"asabig-talent-platform/internal/repository"
	"asabig-talent-platform/internal/service"
	"asabig-talent-platform/internal/usecase"
	"asabig-talent-platform/pkg/jwt"
	"asabig-talent-platform/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	athleteRepo := repository.NewAthleteRepository()
	metricRepo := repository.NewMetricRepository()
	uploadRepo := repository.NewUploadRepository()
	noteRepo := repository.NewNoteRepository()
	shortlistRepo := repository.NewShortlistRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	osFs := afero.NewOsFs()
	auditService := service.NewAuditService(db, log, auditLogRepo)
	storageService := service.NewLocalStorageService(osFs, cfg.Storage.UploadDir, log)

	// Load benchmark datasets once at startup; missing files are reported
	// per-dataset instead of failing boot
	loader := dataset.NewLoader(osFs, cfg.Data.Dir, log)
	tables, statuses := loader.LoadAll()
	logrus.Infof("Benchmark datasets loaded: %d of %d", len(tables), len(statuses))

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, athleteRepo, jwtService, redisClient, auditService)
	athleteUsecase := usecase.NewAthleteUsecase(db, log, athleteRepo, metricRepo, uploadRepo, storageService, auditService)
	metricUsecase := usecase.NewMetricUsecase(db, log, athleteRepo, metricRepo, auditService)
	uploadUsecase := usecase.NewUploadUsecase(db, log, athleteRepo, uploadRepo, storageService, auditService)
	noteUsecase := usecase.NewNoteUsecase(db, log, athleteRepo, noteRepo, auditService)
	shortlistUsecase := usecase.NewShortlistUsecase(db, log, shortlistRepo, athleteRepo, auditService)
	benchmarkUsecase := usecase.NewBenchmarkUsecase(log, tables, statuses)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	athleteHandler := handler.NewAthleteHandler(athleteUsecase, customValidator)
	metricHandler := handler.NewMetricHandler(metricUsecase, customValidator)
	uploadHandler := handler.NewUploadHandler(uploadUsecase, customValidator)
	noteHandler := handler.NewNoteHandler(noteUsecase, customValidator)
	shortlistHandler := handler.NewShortlistHandler(shortlistUsecase, customValidator)
	benchmarkHandler := handler.NewBenchmarkHandler(benchmarkUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		athleteHandler,
		metricHandler,
		uploadHandler,
		noteHandler,
		shortlistHandler,
		benchmarkHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

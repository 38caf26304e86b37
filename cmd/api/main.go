package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/discussion-planner/pkg/validator"

	_ "github.com/johnquangdev/discussion-planner/docs"
	"github.com/johnquangdev/discussion-planner/internal/adapter/handler"
	"github.com/johnquangdev/discussion-planner/internal/adapter/repository"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/cache"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/database"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/metrics"
	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
	"github.com/johnquangdev/discussion-planner/pkg/config"
)

// @title           Discussion Planner API
// @version         1.0
// @description     Generates round-by-round discussion group assignments for events

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Production deployments manage schema with cmd/migrate
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run cmd/migrate.")
		}
		if err := database.Migrate(db, cfg.Database.MigrationDir, database.Up); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize generation lock
	var locker assignment.Locker
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		locker = cache.NewRedisLocker(redisClient, "planner:")
	} else {
		log.Println("⚠️  Redis disabled, generation lock is local to this process")
		store := cache.NewMemoryStore()
		defer store.Close()
		locker = cache.NewMemoryLocker(store, "planner:")
	}

	// Initialize metrics
	var recorder assignment.MetricsRecorder = metrics.NewNop()
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheus(registry, cfg.Metrics.Namespace)
		gatherer = registry
		log.Printf("📈 Metrics exposed on %s", cfg.Metrics.Path)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	rankingRepo := repository.NewTopicRankingRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize assignment service
	log.Println("🧮 Initializing assignment service...")
	assignmentService := assignment.NewAssignmentService(
		eventRepo,
		participantRepo,
		topicRepo,
		rankingRepo,
		assignmentRepo,
		locker,
		recorder,
		assignment.ServiceConfig{
			LockTTL:  cfg.Planner.LockTTL,
			LockWait: cfg.Planner.LockWait,
		},
		logger,
	)

	assignmentHandler := handler.NewAssignmentHandler(assignmentService, logger)
	log.Println("✅ Assignment handler initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, assignmentHandler, gatherer)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

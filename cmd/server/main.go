package main

import (
	"alcyxob/plan-tracker/internal/api"
	"alcyxob/plan-tracker/internal/catalog"
	"alcyxob/plan-tracker/internal/config"
	"alcyxob/plan-tracker/internal/logging"
	"alcyxob/plan-tracker/internal/metrics"
	"alcyxob/plan-tracker/internal/repository"
	"alcyxob/plan-tracker/internal/repository/mongo"
	"alcyxob/plan-tracker/internal/service"
	"alcyxob/plan-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// @title Plan Tracker API
// @version 1.0
// @description API for following training plans: enrollments, schedule overrides and workout logs.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
		ServiceName:   cfg.Log.ServiceName,
		Environment:   cfg.Log.Environment,
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxBackups:    cfg.Log.MaxBackups,
		MaxAgeDays:    cfg.Log.MaxAgeDays,
	})
	defer logCloser.Close()
	log.Println("starting plan tracker server...")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("database connection established")

	// --- Ensure Indexes ---
	go ensureIndexes(appDB)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, registry)

	// --- Catalog ---
	catalogRepo, err := newCatalog(cfg, appDB, metricsManager)
	if err != nil {
		log.Fatalf("could not initialize catalog: %v", err)
	}

	// --- Advancement guard ---
	guard := service.NewNoopAdvanceGuard()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Errorf("failed to close redis client: %v", err)
			}
		}()
		guard = service.NewRedisAdvanceGuard(redisClient)
		log.Printf("advancement guard backed by redis at %s", cfg.Redis.Addr)
	} else {
		log.Warnln("redis address not set, lazy advancement is not deduplicated")
	}

	// --- Repositories and Services ---
	enrollmentRepo := mongo.NewMongoEnrollmentRepository(appDB)
	userRepo := mongo.NewMongoUserRepository(appDB)

	progressService := service.NewProgressService(catalogRepo, enrollmentRepo, userRepo, guard, metricsManager)
	planService := service.NewPlanService(catalogRepo, enrollmentRepo)

	// --- Initialize Gin Engine ---
	if !log.IsLevelEnabled(log.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger())
	api.SetupRoutes(router, cfg.JWT.Secret, progressService, planService, metricsManager, registry)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Println("server exiting")
}

func ensureIndexes(db *mongodriver.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	if err := mongo.EnsureEnrollmentIndexes(ctx, db.Collection("enrollments")); err != nil {
		log.Errorf("ensure enrollment indexes: %v", err)
	}
	if err := mongo.EnsureCatalogIndexes(ctx, db); err != nil {
		log.Errorf("ensure catalog indexes: %v", err)
	}
	log.Println("index creation process completed")
}

// newCatalog builds the template source named by the config and wraps it in
// the in-process cache.
func newCatalog(cfg config.Config, db *mongodriver.Database, metricsManager *metrics.Manager) (repository.CatalogRepository, error) {
	var source repository.CatalogRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourceMongo:
		source = mongo.NewMongoCatalogRepository(db)
	case config.CatalogSourceS3:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		objectStorage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("init s3 storage: %w", err)
		}
		snapshot, err := catalog.LoadSnapshot(ctx, objectStorage, cfg.Catalog.SnapshotKey)
		if err != nil {
			return nil, err
		}
		source = snapshot
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
	log.Printf("catalog source: %s (cache %d MB, ttl %s)", cfg.Catalog.Source, cfg.Catalog.CacheSizeMB, cfg.Catalog.CacheTTL)
	return catalog.NewCachedRepository(source, cfg.Catalog.CacheSizeMB, cfg.Catalog.CacheTTL, metricsManager), nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-registry/config"
	_ "go-resume-registry/docs" // Important for Swagger
	v1 "go-resume-registry/internal/delivery/http/v1"
	"go-resume-registry/internal/domain"
	"go-resume-registry/internal/repository/memory"
	"go-resume-registry/internal/repository/postgres"
	"go-resume-registry/internal/usecase"
	"go-resume-registry/pkg/database"
	"go-resume-registry/pkg/logger"
	"go-resume-registry/pkg/storage"
	"go-resume-registry/pkg/validation"
)

// @title           Resume Registry API
// @version         1.0
// @description     Candidate record registry with resume upload, filtering and deletion.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume registry", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Content Store
	var contentStore domain.ContentStore
	switch cfg.StorageDriver {
	case "s3":
		contentStore, err = storage.NewS3Store(ctx, cfg.S3Config())
		if err != nil {
			logger.Log.Error("Failed to set up S3 resume storage", "error", err)
			os.Exit(1)
		}
	default:
		contentStore, err = storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			logger.Log.Error("Failed to set up local resume storage", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Record Store
	var candidateRepo domain.CandidateRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		candidateRepo = postgres.NewCandidateRepository(dbPool)
	} else {
		candidateRepo = memory.NewCandidateRepository()
	}

	// 5. Setup UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, contentStore, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

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

	"go-resume-backend/config"
	_ "go-resume-backend/docs" // Important for Swagger
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/llm"
	"go-resume-backend/internal/parser"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/extract"
	"go-resume-backend/pkg/jobsearch"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/storage"
	"go-resume-backend/pkg/validation"
)

// @title           Resume Parsing API
// @version         1.0
// @description     Heuristic resume-to-structured-data parsing service using Clean Architecture.
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
	logger.Log.Info("Starting resume backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades to in-memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer startupCancel()

	store, err := storage.New(startupCtx, storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to configure object storage", "error", err)
		os.Exit(1)
	}
	if err := store.Ping(startupCtx); err != nil {
		logger.Log.Warn("Object storage unreachable at startup", "error", err)
	}

	// 6. Setup Parsing Pipeline
	resumeParser := parser.New(parser.DefaultKeywords(), parser.LayoutOptions{
		LineBreakDelta: cfg.ParserLineBreakDelta,
		WordGapDelta:   cfg.ParserWordGapDelta,
		GlyphWidth:     cfg.ParserGlyphWidth,
	})
	extractor := extract.New()

	// 7. Setup LLM Advisor (optional)
	var advisor domain.CareerAdvisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiAdvisor(startupCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Error("Failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		advisor = gemini
	}

	// 8. Setup Repositories and UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, store, extractor, resumeParser, validate)
	recommendationUC := usecase.NewRecommendationUsecase(resumeRepo, advisor)
	jobClient := jobsearch.NewClient(cfg.JobSearchURL, cfg.JobSearchAppID, cfg.JobSearchAppKey)
	jobMatchUC := usecase.NewJobMatchUsecase(resumeRepo, jobClient)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:         resumeUC,
		RecommendationUC: recommendationUC,
		JobMatchUC:       jobMatchUC,
		HealthUC:         healthUC,
		Config:           cfg,
	})

	// 10. Start Server
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

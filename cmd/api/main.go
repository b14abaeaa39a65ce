package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-backend/config"
	_ "go-interview-backend/docs" // Important for Swagger
	v1 "go-interview-backend/internal/delivery/http/v1"
	"go-interview-backend/internal/repository/postgres"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/auth"
	"go-interview-backend/pkg/database"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Interview Coordination API
// @version         1.0
// @description     Backend for interview scheduling and candidate identity resolution.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting interview coordination backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional dashboard cache)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, dashboard caching disabled", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	examRepo := postgres.NewExamRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, profileRepo)
	repairer := usecase.NewLinkRepairer(candidateRepo, interviewRepo)
	resolver := usecase.NewInterviewResolver(interviewRepo, candidateRepo, repairer, cfg.ResolverScanLimit)
	dashboardUC := usecase.NewDashboardUsecase(
		jobRepo, resolver, redis.Client(),
		time.Duration(cfg.DashboardCacheTTLSeconds)*time.Second, cfg.DashboardJobLimit,
	)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, profileRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, candidateRepo, profileRepo, resolver, validate)
	examUC := usecase.NewExamUsecase(examRepo)

	// 7. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		InterviewUC:  interviewUC,
		CandidateUC:  candidateUC,
		ExamUC:       examUC,
		JobRepo:      jobRepo,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 9. Start Server
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

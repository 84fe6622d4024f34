package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/careconnect/careconnect-api/internal/config"
	"github.com/careconnect/careconnect-api/internal/handler"
	appointmentHandler "github.com/careconnect/careconnect-api/internal/handler/appointment"
	authHandler "github.com/careconnect/careconnect-api/internal/handler/auth"
	chatHandler "github.com/careconnect/careconnect-api/internal/handler/chat"
	doctorHandler "github.com/careconnect/careconnect-api/internal/handler/doctor"
	siteHandler "github.com/careconnect/careconnect-api/internal/handler/site"
	"github.com/careconnect/careconnect-api/internal/rag/embedding/google"
	"github.com/careconnect/careconnect-api/internal/rag/llm/gemini"
	"github.com/careconnect/careconnect-api/internal/rag/retrieval"
	"github.com/careconnect/careconnect-api/internal/rag/vectorstore/memory"
	"github.com/careconnect/careconnect-api/internal/repository/postgres"
	"github.com/careconnect/careconnect-api/internal/router"
	appointmentService "github.com/careconnect/careconnect-api/internal/service/appointment"
	authService "github.com/careconnect/careconnect-api/internal/service/auth"
	chatService "github.com/careconnect/careconnect-api/internal/service/chat"
	doctorService "github.com/careconnect/careconnect-api/internal/service/doctor"
	"github.com/careconnect/careconnect-api/pkg/logger"
	"github.com/careconnect/careconnect-api/pkg/metrics"
	"github.com/careconnect/careconnect-api/pkg/security"
	"github.com/careconnect/careconnect-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	if err := validator.RegisterCustomValidations(); err != nil {
		appLogger.Fatal(err, "failed to register validators")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLogger.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("careconnect")

	// Gemini clients for embeddings and chat completions.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	embedder, err := google.NewEmbedder(ctx, cfg.Gemini.EmbeddingModel, cfg.Gemini.APIKey)
	if err != nil {
		appLogger.Fatal(err, "failed to create embedding client")
	}
	llmProvider, err := gemini.NewProvider(ctx, cfg.Gemini.ChatModel, cfg.Gemini.APIKey)
	if err != nil {
		appLogger.Fatal(err, "failed to create chat model client")
	}

	retriever := retrieval.NewService(embedder, memory.NewStore(), retrieval.Config{
		ChunkSize:    cfg.Retrieval.ChunkSize,
		ChunkOverlap: cfg.Retrieval.ChunkOverlap,
		MinScore:     cfg.Retrieval.MinScore,
	}, appLogger, m)

	// Index the project description in the background. The chat
	// endpoint answers 503 until this finishes.
	go func() {
		if err := retriever.BuildIndexFromFile(ctx, cfg.Retrieval.DescriptionPath); err != nil {
			appLogger.Error(err, "failed to build retrieval index")
		}
	}()

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	// Services
	doctorSvc := doctorService.NewService(doctorRepo)
	authSvc := authService.NewService(patientRepo, security.NewBcryptHasher(12))
	appointmentSvc := appointmentService.NewService(appointmentRepo, appLogger)
	chatSvc := chatService.NewService(retriever, llmProvider, cfg.Retrieval.TopK, appLogger)

	// Handlers
	h := handler.NewHandler(db, retriever)
	r := router.NewRouter(h, m, router.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RPS,
		RateLimitBurst:   cfg.RateLimit.Burst,
		RequestTimeout:   time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		TemplateGlob:     "web/templates/*.tmpl",
	},
		doctorHandler.NewHandler(doctorSvc, appLogger),
		authHandler.NewHandler(authSvc, appLogger),
		appointmentHandler.NewHandler(appointmentSvc, appLogger),
		chatHandler.NewHandler(chatSvc, appLogger, cfg.IsProduction()),
		siteHandler.NewHandler(),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}

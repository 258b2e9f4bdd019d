package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/666akuma13/interview-agent/internal/config"
	"github.com/666akuma13/interview-agent/internal/handlers"
	"github.com/666akuma13/interview-agent/internal/interview"
	"github.com/666akuma13/interview-agent/internal/jobs"
	"github.com/666akuma13/interview-agent/internal/llm"
	_ "github.com/666akuma13/interview-agent/internal/llm/gemini"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/prompts"
	"github.com/666akuma13/interview-agent/internal/report"
	"github.com/666akuma13/interview-agent/internal/repositories"
	"github.com/666akuma13/interview-agent/internal/routers"
)

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.ScheduleToken{}, &models.CandidateRound{}, &models.QuestionSet{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.Int("question_budget", cfg.QuestionBudget))

	promptManager, err := prompts.NewManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	schedules := &repositories.ScheduleRepository{DB: db}
	rounds := &repositories.RoundRepository{DB: db}
	questionBank := &repositories.QuestionBankRepository{DB: db}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_IDLE_TTL", "2h"))
	if err != nil {
		logger.Fatal("Invalid SESSION_IDLE_TTL", zap.Error(err))
	}
	sessions := interview.NewStore(sessionTTL)
	synthesizer := report.NewSynthesizer(aiProvider, promptManager, logger)

	interviewHandler := handlers.NewInterviewHandler(
		aiProvider, promptManager, sessions, synthesizer,
		schedules, rounds, questionBank, logger, cfg.QuestionBudget)
	scheduleTTL := time.Duration(cfg.ScheduleTTLDays) * 24 * time.Hour
	scheduleHandler := handlers.NewScheduleHandler(schedules, logger, scheduleTTL)
	questionBankHandler := handlers.NewQuestionBankHandler(questionBank, logger)
	resultsHandler := handlers.NewResultsHandler(rounds, logger)
	authHandler := handlers.NewAuthHandler(cfg, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, db)

	cleanupJob := jobs.NewScheduleCleanupJob(schedules, cfg.CleanupSchedule, logger)
	if err := cleanupJob.Start(); err != nil {
		logger.Error("Failed to start schedule cleanup job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))

	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler)
	routers.AdminRoutes(router, authHandler, interviewHandler, scheduleHandler, questionBankHandler, resultsHandler, cfg.JWTSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	cleanupJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}

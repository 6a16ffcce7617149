package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"remiro-ai/internal/config"
	"remiro-ai/internal/db"
	apihttp "remiro-ai/internal/http"
	"remiro-ai/internal/llm"
	"remiro-ai/internal/repository"
	"remiro-ai/internal/service"
	"remiro-ai/internal/store"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	profiles, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("profile store init", zap.Error(err))
	}

	// Transcript: Postgres si hay DATABASE_URL, si no SQLite embebido.
	var messageRepo repository.MessageRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		messageRepo = repository.NewPgMessageRepository(pool)
		logger.Info("transcript backend", zap.String("kind", "postgres"))
	} else {
		path := cfg.SQLitePath
		if path == "" {
			path = filepath.Join(cfg.DataDir, "messages.db")
		}
		sqliteRepo, err := repository.OpenSQLiteMessageRepository(path)
		if err != nil {
			logger.Fatal("sqlite init", zap.Error(err))
		}
		defer sqliteRepo.Close()
		messageRepo = sqliteRepo
		logger.Info("transcript backend", zap.String("kind", "sqlite"), zap.String("path", path))
	}

	// Sesiones: Redis si esta configurado y responde, si no memoria.
	sessions := service.NewMemorySessionStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory sessions", zap.Error(err))
		} else {
			sessions = service.NewRedisSessionStore(redisClient, 24*time.Hour)
			logger.Info("session backend", zap.String("kind", "redis"))
		}
		cancel()
	}

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "openai":
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, nil)
	default:
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			logger.Fatal("gemini client init", zap.Error(err))
		}
		llmClient = geminiClient
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLHours)*time.Hour)

	reportSvc := service.NewReportService(llmClient, logger)
	contextSvc := service.NewTranscriptContextService(messageRepo)
	orch := service.NewOrchestrator(llmClient, profiles, messageRepo, sessions, reportSvc, contextSvc, logger)

	userHandler := apihttp.NewUserHandler(logger, profiles, jwtSvc)
	chatHandler := apihttp.NewChatHandler(logger, orch)
	profileHandler := apihttp.NewProfileHandler(logger, profiles, reportSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, chatHandler, profileHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

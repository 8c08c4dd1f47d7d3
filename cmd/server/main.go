package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/liderlab/assessment-system/internal/api"
	"github.com/liderlab/assessment-system/internal/core/ports"
	"github.com/liderlab/assessment-system/internal/core/service"
	"github.com/liderlab/assessment-system/internal/infrastructure/cache/redis"
	"github.com/liderlab/assessment-system/internal/infrastructure/config"
	"github.com/liderlab/assessment-system/internal/infrastructure/insight"
	"github.com/liderlab/assessment-system/internal/infrastructure/storage/jsonfile"
	"github.com/liderlab/assessment-system/internal/infrastructure/storage/mongodb"
	"github.com/liderlab/assessment-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	var (
		assessments ports.AssessmentRepository
		users       ports.UserRepository
	)
	switch cfg.Storage.Driver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Storage.Mongo.URI,
			Database: cfg.Storage.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("error disconnecting MongoDB client")
			}
		}()
		assessments = mongodb.NewAssessmentRepository(db)
		users = mongodb.NewUserRepository(db)
		log.Info().Str("database", cfg.Storage.Mongo.Database).Msg("using MongoDB storage")
	default:
		store := jsonfile.NewStore(cfg.Storage.DataDir)
		assessments = jsonfile.NewAssessmentRepository(store)
		users = jsonfile.NewUserRepository(store)
		log.Info().Str("dir", cfg.Storage.DataDir).Msg("using file storage")
	}

	// --- Optional insight cache ---
	var insightCache ports.InsightCache
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing Redis client")
			}
		}()
		insightCache = redis.NewInsightCache(client, cfg.Redis.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("insight cache enabled")
	}

	// --- Optional AI generator ---
	var generator ports.TextGenerator
	if cfg.Insight.GeminiAPIKey != "" {
		gen, err := insight.NewGeminiGenerator(ctx, cfg.Insight.GeminiAPIKey, cfg.Insight.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialise Gemini client")
		}
		generator = gen
		log.Info().Str("model", cfg.Insight.GeminiModel).Msg("AI insight generation enabled")
	} else {
		log.Info().Msg("GEMINI_API_KEY not set, AI insight generation disabled")
	}

	// --- Services ---
	assessmentService := service.NewAssessmentService(assessments, log)
	authService := service.NewAuthService(users, service.SeedUsers{
		MasterEmail:     cfg.Seed.MasterEmail,
		StandardEmail:   cfg.Seed.StandardEmail,
		DefaultPassword: cfg.Seed.DefaultPassword,
	}, cfg.JWTSecret, 0, log)
	insightService := service.NewInsightService(generator, insightCache, cfg.Insight.Timeout, log)

	if err := authService.EnsureSeedUsers(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default users")
	}

	e, err := api.NewRouter(api.Dependencies{
		Assessments:   assessmentService,
		Auth:          authService,
		Insights:      insightService,
		Users:         users,
		JWTSecret:     cfg.JWTSecret,
		SessionSecret: cfg.SessionSecret,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

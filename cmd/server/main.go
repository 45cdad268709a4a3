package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathwise/career-advisor/internal/api"
	"github.com/pathwise/career-advisor/internal/core/service"
	"github.com/pathwise/career-advisor/internal/infrastructure/advisor"
	infraauth "github.com/pathwise/career-advisor/internal/infrastructure/auth"
	"github.com/pathwise/career-advisor/internal/infrastructure/config"
	mongodb "github.com/pathwise/career-advisor/internal/infrastructure/db/mongo"
	redisdb "github.com/pathwise/career-advisor/internal/infrastructure/db/redis"
	"github.com/pathwise/career-advisor/internal/infrastructure/queue"
	"github.com/pathwise/career-advisor/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; config failure is fatal either way.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	accountRepo := mongodb.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure account indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	// --- Core components ---
	hasher := infraauth.NewBcryptHasher(cfg.BcryptCost)
	issuer := infraauth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)

	history := redisdb.NewHistoryStore(rdb)
	dispatcher := queue.NewDispatcher(0, history, log)

	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()
	dispatcher.Start(dispatcherCtx)

	advisorClient := advisor.NewClient(advisor.Config{
		BaseURL: cfg.Advisor.BaseURL,
		Model:   cfg.Advisor.Model,
		Timeout: cfg.Advisor.Timeout,
	})

	authService := service.NewAuthService(accountRepo, hasher, issuer, log)
	profileService := service.NewProfileService(accountRepo)
	chatService := service.NewChatService(accountRepo, advisorClient, dispatcher, history, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Profile: profileService,
		Chat:    chatService,
		Issuer:  issuer,
		Mongo:   db,
		Redis:   rdb,
		Log:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("career advisor API listening")

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

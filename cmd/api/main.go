package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conexa/starwars-api/internal/api"
	"github.com/conexa/starwars-api/internal/core/service"
	"github.com/conexa/starwars-api/internal/infrastructure/catalog"
	"github.com/conexa/starwars-api/internal/infrastructure/config"
	mongodb "github.com/conexa/starwars-api/internal/infrastructure/db/mongo"
	redisdb "github.com/conexa/starwars-api/internal/infrastructure/db/redis"
	"github.com/conexa/starwars-api/internal/infrastructure/scheduler"
	"github.com/conexa/starwars-api/pkg/logger"
)

const tokenTTL = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; a missing JWT_SECRET is fatal by design.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := movieRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("movie index creation failed")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, tokens, service.BootstrapAdmin{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, log)
	movieService := service.NewMovieService(movieRepo, log)
	swapi := catalog.NewSwapiClient(cfg.Swapi.BaseURL)
	syncService := service.NewSyncService(swapi, movieRepo, redisdb.NewSyncMarker(rdb), log)

	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// Startup run plus the daily midnight trigger.
	scheduler.NewScheduler(syncService, log).Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterConfig{
		Mongo:        db,
		Redis:        rdb,
		Tokens:       tokens,
		AuthService:  authService,
		MovieService: movieService,
		Catalog:      swapi,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

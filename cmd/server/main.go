package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthana/linkshort/pkg/adapters/cache"
	"github.com/pthana/linkshort/pkg/adapters/handler"
	"github.com/pthana/linkshort/pkg/adapters/repository/sqlite"
	"github.com/pthana/linkshort/pkg/config"
	"github.com/pthana/linkshort/pkg/core/services"
	"github.com/pthana/linkshort/pkg/logger"
	"github.com/pthana/linkshort/pkg/ports"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogFile)

	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer repo.Close()

	linkCache := newCache(cfg)
	if linkCache != nil {
		defer linkCache.Close()
	}

	service := services.NewLinkService(repo, linkCache)
	cleanup := services.NewCleanupService(repo)

	router := handler.NewRouter(cfg, service, cleanup)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func newCache(cfg *config.Config) ports.LinkCache {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	switch cfg.CacheBackend {
	case "memory":
		c, err := cache.NewMemoryCache(cfg.CacheMaxSizeMB, ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize memory cache")
		}
		return c
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize redis cache")
		}
		return c
	default:
		log.Info().Msg("cache disabled")
		return nil
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenplate/sustainabite/pkg/config"
	"github.com/greenplate/sustainabite/pkg/enrich"
	"github.com/greenplate/sustainabite/pkg/favorites"
	"github.com/greenplate/sustainabite/pkg/logger"
	"github.com/greenplate/sustainabite/pkg/server"
	"github.com/greenplate/sustainabite/pkg/spoonacular"
	"github.com/greenplate/sustainabite/pkg/storage"
)

func main() {
	log := logger.Global
	log.Info("Starting Sustainabite backend...")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	store.StartGCRoutine(10 * time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var broadcaster favorites.Broadcaster = favorites.NoopBroadcaster{}
	if cfg.RedisAddr != "" {
		redisBroadcaster := favorites.NewRedisBroadcaster(cfg.RedisAddr, cfg.RedisChannel)
		defer redisBroadcaster.Close()
		broadcaster = redisBroadcaster

		// Log what other instances announce; each instance re-reads
		// its own persisted state on demand.
		go redisBroadcaster.Listen(ctx, func(count int) {
			log.Info("Favorites changed elsewhere, announced count %d", count)
		})
		log.Info("Favorites broadcast enabled via Redis at %s (channel %s)", cfg.RedisAddr, cfg.RedisChannel)
	}

	favoritesService := favorites.New(store, broadcaster)
	searchClient := spoonacular.New(cfg.SpoonacularKey)
	enrichClient := enrich.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)

	srv := server.New(searchClient, enrichClient, favoritesService)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Handler(cfg.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("Shutdown complete")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/config"
	"github.com/Pasiduchamod/CompareShop/internal/repository"
	"github.com/Pasiduchamod/CompareShop/internal/router"
	"github.com/Pasiduchamod/CompareShop/internal/service"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open persistence backend")
	}
	defer kv.Close()

	// In-memory engine state, restored from the mirror once at startup.
	// A failed load starts empty rather than refusing to boot: the mirror
	// is best-effort, the memory copy is authoritative.
	store := catalog.NewStore()
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if blob, err := kv.Load(loadCtx, repository.KeyCategories); err != nil {
		log.Warn().Err(err).Msg("could not load persisted catalog, starting empty")
	} else if blob != nil {
		if err := store.Restore(blob); err != nil {
			log.Warn().Err(err).Msg("corrupt catalog snapshot, starting empty")
		}
	}

	// Async mirror writer — saves never block mutations
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	saver := worker.NewSaver(kv, cfg.SaveQueueSize)
	saver.Start(ctx)

	currencySvc := service.NewCurrencyService(saver)
	if blob, err := kv.Load(loadCtx, repository.KeyCurrency); err != nil {
		log.Warn().Err(err).Msg("could not load currency preference, using default")
	} else {
		currencySvc.Restore(blob)
	}
	loadCancel()

	r := router.New(cfg, store, kv, saver, currencySvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("CompareShop backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Flush pending snapshots so the last mutation reaches the mirror
	cancel()
	saver.Wait()
	log.Info().Msg("server exited")
}

// openStore selects the persistence backend from config.
func openStore(cfg *config.Config) (repository.KVStore, error) {
	switch cfg.StoreBackend {
	case "redis":
		return repository.NewRedisStore(cfg.RedisURL)
	case "bolt":
		return repository.NewBoltStore(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

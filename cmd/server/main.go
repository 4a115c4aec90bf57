package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sijj2003/app-tienda/internal/config"
	"github.com/Sijj2003/app-tienda/internal/infra"
	"github.com/Sijj2003/app-tienda/internal/router"
	"github.com/Sijj2003/app-tienda/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Licencia — without a valid license.key the app does not come up
	if err := infra.VerificarLicencia(cfg.DataDir, cfg.LicenseSecret); err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("verificacion de licencia fallida")
	}

	db, err := infra.NewDatabase(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite database")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// BCV scraper behind a circuit breaker; the poller shares the CB so it
	// can skip ticks while the breaker is open.
	bcvCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	bcvClient := infra.NewBCVClient(cfg.BCVURL, bcvCB)

	r, tasaSvc := router.New(cfg, db, bcvClient)

	worker.StartTasaPoller(ctx, worker.TasaPollerConfig{
		TasaService: tasaSvc,
		CB:          bcvCB,
		Interval:    time.Duration(cfg.TasaPollIntervalSecs) * time.Second,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("app-tienda backend listening on :%d", cfg.Port)
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
	log.Info().Msg("server exited")
}

package worker

// tasa_poller.go
// Background goroutine that periodically scrapes the BCV site for the
// official USD rate and records it when it changed. The HTTP client is
// guarded by a Circuit Breaker so a downed BCV page is not hammered.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Sijj2003/app-tienda/internal/infra"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"
)

// TasaPollerConfig holds all dependencies for the polling goroutine.
type TasaPollerConfig struct {
	TasaService service.TasaService
	CB          *infra.CircuitBreaker
	Interval    time.Duration
}

// StartTasaPoller launches a background goroutine that fetches the BCV
// rate once at startup and then on every tick. It respects the context
// for graceful shutdown.
func StartTasaPoller(ctx context.Context, cfg TasaPollerConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("tasa_poller: started")

		pollTasa(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("tasa_poller: shutting down")
				return
			case <-ticker.C:
				pollTasa(ctx, cfg)
			}
		}
	}()
}

func pollTasa(ctx context.Context, cfg TasaPollerConfig) {
	// If CB is open, skip entirely — the site already failed repeatedly
	if cfg.CB != nil && cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("tasa_poller: circuit breaker is open, skipping tick")
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := cfg.TasaService.ActualizarDesdeWeb(fetchCtx, model.FuenteWebAuto)
	if err != nil {
		log.Warn().Err(err).Msg("tasa_poller: no se pudo actualizar la tasa BCV")
		return
	}

	log.Info().
		Str("tasa", resp.Tasa.String()).
		Str("fuente", resp.Fuente).
		Msg("tasa_poller: tasa BCV vigente")
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// tasaEpsilon: automatic polls only write a new row when the value moved more
// than this, so an unchanged source never spams the history.
var tasaEpsilon = decimal.NewFromFloat(1e-6)

const (
	tasaCacheKey = "tasa_latest"
	tasaCacheTTL = 5 * time.Minute
)

// TasaFetcher obtains the current rate from the external source.
// Implemented by infra.BCVClient.
type TasaFetcher interface {
	FetchTasa(ctx context.Context) (decimal.Decimal, error)
}

type TasaService interface {
	// Latest never fails on an empty history: Disponible=false with a zero
	// sentinel instead.
	Latest(ctx context.Context) (*dto.TasaResponse, error)
	// AsOf returns the rate in force at ts: the most recent row registered at
	// or before it, falling back to the overall latest when none precedes it.
	AsOf(ctx context.Context, ts time.Time) (*dto.TasaResponse, error)
	// RecordIfChanged writes a new observation only when it moved beyond the
	// epsilon; the automatic poll calls it every cycle.
	RecordIfChanged(ctx context.Context, tasa decimal.Decimal, fuente string) (bool, error)
	// RegistrarManual always writes: an operator-typed rate leaves a row even
	// when it matches the latest one.
	RegistrarManual(ctx context.Context, req dto.RegistrarTasaManualRequest) (*dto.TasaResponse, error)
	// ActualizarDesdeWeb fetches from the BCV page and records under the
	// given fuente. Only the automatic source goes through the epsilon
	// comparison; an operator-triggered refresh writes unconditionally.
	ActualizarDesdeWeb(ctx context.Context, fuente string) (*dto.TasaResponse, error)
}

type tasaService struct {
	repo    repository.TasaRepository
	fetcher TasaFetcher
	cache   *gocache.Cache
}

func NewTasaService(repo repository.TasaRepository, fetcher TasaFetcher) TasaService {
	return &tasaService{
		repo:    repo,
		fetcher: fetcher,
		cache:   gocache.New(tasaCacheTTL, 2*tasaCacheTTL),
	}
}

func (s *tasaService) Latest(ctx context.Context) (*dto.TasaResponse, error) {
	if cached, ok := s.cache.Get(tasaCacheKey); ok {
		return cached.(*dto.TasaResponse), nil
	}

	t, err := s.repo.Latest(ctx)
	if err != nil {
		return tasaNoDisponible(), nil
	}
	resp := tasaToResponse(t)
	s.cache.SetDefault(tasaCacheKey, resp)
	return resp, nil
}

func (s *tasaService) AsOf(ctx context.Context, ts time.Time) (*dto.TasaResponse, error) {
	if t, err := s.repo.AsOf(ctx, ts); err == nil {
		return tasaToResponse(t), nil
	}
	// Nothing precedes ts — fall back to the latest observation overall.
	if t, err := s.repo.Latest(ctx); err == nil {
		return tasaToResponse(t), nil
	}
	return tasaNoDisponible(), nil
}

func (s *tasaService) RecordIfChanged(ctx context.Context, tasa decimal.Decimal, fuente string) (bool, error) {
	if tasa.Sign() <= 0 {
		return false, errors.New("la tasa debe ser mayor a cero")
	}

	if latest, err := s.repo.Latest(ctx); err == nil {
		if tasa.Sub(latest.Tasa).Abs().LessThanOrEqual(tasaEpsilon) {
			return false, nil
		}
	}

	if err := s.registrar(ctx, tasa, fuente); err != nil {
		return false, err
	}
	return true, nil
}

func (s *tasaService) RegistrarManual(ctx context.Context, req dto.RegistrarTasaManualRequest) (*dto.TasaResponse, error) {
	if req.Tasa.Sign() <= 0 {
		return nil, errors.New("la tasa debe ser mayor a cero")
	}
	if err := s.registrar(ctx, req.Tasa, model.FuenteManual); err != nil {
		return nil, err
	}
	return s.Latest(ctx)
}

func (s *tasaService) ActualizarDesdeWeb(ctx context.Context, fuente string) (*dto.TasaResponse, error) {
	tasa, err := s.fetcher.FetchTasa(ctx)
	if err != nil {
		return nil, err
	}
	// The scheduled poll dedups via the epsilon; a refresh the operator asked
	// for always leaves a row, same value or not.
	if fuente == model.FuenteWebAuto {
		if _, err := s.RecordIfChanged(ctx, tasa, fuente); err != nil {
			return nil, err
		}
	} else if err := s.registrar(ctx, tasa, fuente); err != nil {
		return nil, err
	}
	return s.Latest(ctx)
}

// registrar appends the observation and drops the cached latest.
func (s *tasaService) registrar(ctx context.Context, tasa decimal.Decimal, fuente string) error {
	t := &model.TasaBCV{Tasa: tasa, Fuente: fuente, FechaRegistro: time.Now()}
	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}
	s.cache.Delete(tasaCacheKey)
	return nil
}

func tasaToResponse(t *model.TasaBCV) *dto.TasaResponse {
	return &dto.TasaResponse{
		Tasa:          t.Tasa,
		Fuente:        t.Fuente,
		FechaRegistro: t.FechaRegistro.Format("2006-01-02 15:04:05"),
		Disponible:    true,
	}
}

func tasaNoDisponible() *dto.TasaResponse {
	return &dto.TasaResponse{Tasa: decimal.Zero, Fuente: "N/A", Disponible: false}
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestTasaLatest_HistorialVacio(t *testing.T) {
	svc := service.NewTasaService(&stubTasaRepo{}, &stubFetcher{})

	resp, err := svc.Latest(context.Background())
	assert.NoError(t, err)
	assert.False(t, resp.Disponible)
	assert.True(t, resp.Tasa.IsZero())
}

func TestTasaLatest_UsaCache(t *testing.T) {
	repo := &stubTasaRepo{}
	seedTasa(t, repo, 103.45, time.Now())
	svc := service.NewTasaService(repo, &stubFetcher{})

	ctx := context.Background()
	_, err := svc.Latest(ctx)
	assert.NoError(t, err)
	_, err = svc.Latest(ctx)
	assert.NoError(t, err)

	assert.Equal(t, 1, repo.latestCalls)
}

func TestRecordIfChanged_EpsilonNoEscribe(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := service.NewTasaService(repo, &stubFetcher{})
	ctx := context.Background()

	escrito, err := svc.RecordIfChanged(ctx, dec("103.4512"), model.FuenteWebAuto)
	assert.NoError(t, err)
	assert.True(t, escrito)

	// Mismo valor: sin fila nueva.
	escrito, err = svc.RecordIfChanged(ctx, dec("103.4512"), model.FuenteWebAuto)
	assert.NoError(t, err)
	assert.False(t, escrito)

	// Dentro del epsilon: tampoco.
	escrito, err = svc.RecordIfChanged(ctx, dec("103.45120000001"), model.FuenteWebAuto)
	assert.NoError(t, err)
	assert.False(t, escrito)

	// Cambio real: nueva observación.
	escrito, err = svc.RecordIfChanged(ctx, dec("103.4612"), model.FuenteWebAuto)
	assert.NoError(t, err)
	assert.True(t, escrito)
	assert.Len(t, repo.tasas, 2)
}

func TestRecordIfChanged_TasaNoPositiva(t *testing.T) {
	svc := service.NewTasaService(&stubTasaRepo{}, &stubFetcher{})

	_, err := svc.RecordIfChanged(context.Background(), dec("0"), model.FuenteWebAuto)
	assert.Error(t, err)
	_, err = svc.RecordIfChanged(context.Background(), dec("-10"), model.FuenteWebAuto)
	assert.Error(t, err)
}

func TestRecordIfChanged_InvalidaElCache(t *testing.T) {
	repo := &stubTasaRepo{}
	seedTasa(t, repo, 100.0, time.Now())
	svc := service.NewTasaService(repo, &stubFetcher{})
	ctx := context.Background()

	antes, err := svc.Latest(ctx)
	assert.NoError(t, err)
	assertDecEqual(t, "100", antes.Tasa)

	_, err = svc.RecordIfChanged(ctx, dec("110"), model.FuenteManual)
	assert.NoError(t, err)

	despues, err := svc.Latest(ctx)
	assert.NoError(t, err)
	assertDecEqual(t, "110", despues.Tasa)
}

func TestTasaAsOf_TomaLaVigente(t *testing.T) {
	repo := &stubTasaRepo{}
	dia := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	seedTasa(t, repo, 100.0, dia.Add(10*time.Hour))
	seedTasa(t, repo, 110.0, dia.Add(12*time.Hour))
	svc := service.NewTasaService(repo, &stubFetcher{})
	ctx := context.Background()

	// A las 11:00 rige la tasa de las 10:00.
	resp, err := svc.AsOf(ctx, dia.Add(11*time.Hour))
	assert.NoError(t, err)
	assertDecEqual(t, "100", resp.Tasa)

	resp, err = svc.AsOf(ctx, dia.Add(13*time.Hour))
	assert.NoError(t, err)
	assertDecEqual(t, "110", resp.Tasa)

	// Nada precede a las 09:00: cae a la última registrada.
	resp, err = svc.AsOf(ctx, dia.Add(9*time.Hour))
	assert.NoError(t, err)
	assertDecEqual(t, "110", resp.Tasa)
}

func TestTasaAsOf_HistorialVacio(t *testing.T) {
	svc := service.NewTasaService(&stubTasaRepo{}, &stubFetcher{})

	resp, err := svc.AsOf(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.False(t, resp.Disponible)
}

func TestRegistrarManual(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := service.NewTasaService(repo, &stubFetcher{})
	ctx := context.Background()

	resp, err := svc.RegistrarManual(ctx, dto.RegistrarTasaManualRequest{Tasa: dec("105.33")})
	assert.NoError(t, err)
	assertDecEqual(t, "105.33", resp.Tasa)
	assert.Equal(t, model.FuenteManual, resp.Fuente)

	_, err = svc.RegistrarManual(ctx, dto.RegistrarTasaManualRequest{Tasa: dec("0")})
	assert.Error(t, err)
}

func TestRegistrarManual_ValorIdenticoEscribe(t *testing.T) {
	repo := &stubTasaRepo{}
	seedTasa(t, repo, 100.0, time.Now())
	svc := service.NewTasaService(repo, &stubFetcher{})

	// El operador teclea la misma tasa vigente: igual queda la fila.
	resp, err := svc.RegistrarManual(context.Background(), dto.RegistrarTasaManualRequest{Tasa: dec("100")})
	assert.NoError(t, err)
	assertDecEqual(t, "100", resp.Tasa)
	assert.Len(t, repo.tasas, 2)
	assert.Equal(t, model.FuenteManual, repo.tasas[1].Fuente)
}

func TestActualizarDesdeWeb(t *testing.T) {
	repo := &stubTasaRepo{}
	fetcher := &stubFetcher{tasa: dec("107.89")}
	svc := service.NewTasaService(repo, fetcher)

	resp, err := svc.ActualizarDesdeWeb(context.Background(), model.FuenteWebAuto)
	assert.NoError(t, err)
	assertDecEqual(t, "107.89", resp.Tasa)
	assert.Equal(t, model.FuenteWebAuto, resp.Fuente)
	assert.Len(t, repo.tasas, 1)
}

func TestActualizarDesdeWeb_AutoDedupManualNo(t *testing.T) {
	repo := &stubTasaRepo{}
	seedTasa(t, repo, 107.89, time.Now())
	fetcher := &stubFetcher{tasa: dec("107.89")}
	svc := service.NewTasaService(repo, fetcher)
	ctx := context.Background()

	// El sondeo automático encuentra la misma tasa: no duplica.
	_, err := svc.ActualizarDesdeWeb(ctx, model.FuenteWebAuto)
	assert.NoError(t, err)
	assert.Len(t, repo.tasas, 1)

	// El refresco pedido por el operador sí deja constancia.
	resp, err := svc.ActualizarDesdeWeb(ctx, model.FuenteWebManual)
	assert.NoError(t, err)
	assertDecEqual(t, "107.89", resp.Tasa)
	assert.Len(t, repo.tasas, 2)
	assert.Equal(t, model.FuenteWebManual, repo.tasas[1].Fuente)
}

func TestActualizarDesdeWeb_FallaDelFetcher(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("timeout contra bcv.org.ve")}
	svc := service.NewTasaService(&stubTasaRepo{}, fetcher)

	_, err := svc.ActualizarDesdeWeb(context.Background(), model.FuenteWebAuto)
	assert.Error(t, err)
}

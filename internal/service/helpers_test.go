package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) FindByBarcode(_ context.Context, barcode string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.CodigoBarras == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListConBultos(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if p.UnidadesPorBulto > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.productos[id]; !ok {
		return errors.New("not found")
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, unidades int, bultos float64) error {
	p, ok := r.productos[id]
	if !ok {
		return errors.New("not found")
	}
	p.StockActual += unidades
	p.StockBultos += bultos
	return nil
}

func (r *stubProductoRepo) SetConteos(_ context.Context, id uuid.UUID, stockActual int, stockBultos float64) error {
	p, ok := r.productos[id]
	if !ok {
		return errors.New("not found")
	}
	p.StockActual = stockActual
	p.StockBultos = stockBultos
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

type stubVentaRepo struct {
	ventas  []model.Venta
	failing bool
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if r.failing {
		return errors.New("db unavailable")
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	if r.failing {
		return nil, 0, errors.New("db unavailable")
	}
	return r.ventas, int64(len(r.ventas)), nil
}

func (r *stubVentaRepo) ListByRange(_ context.Context, desde, hasta time.Time, estados ...string) ([]model.Venta, error) {
	if r.failing {
		return nil, errors.New("db unavailable")
	}
	var out []model.Venta
	for _, v := range r.ventas {
		if v.CreatedAt.Before(desde) || v.CreatedAt.After(hasta) {
			continue
		}
		for _, e := range estados {
			if v.Estado == e {
				out = append(out, v)
				break
			}
		}
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

type stubAvanceRepo struct {
	avances []model.AvanceEfectivo
	failing bool
}

func (r *stubAvanceRepo) Create(_ context.Context, a *model.AvanceEfectivo) error {
	if r.failing {
		return errors.New("db unavailable")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	r.avances = append(r.avances, *a)
	return nil
}

func (r *stubAvanceRepo) ListByRange(_ context.Context, desde, hasta time.Time, estados ...string) ([]model.AvanceEfectivo, error) {
	if r.failing {
		return nil, errors.New("db unavailable")
	}
	var out []model.AvanceEfectivo
	for _, a := range r.avances {
		if a.CreatedAt.Before(desde) || a.CreatedAt.After(hasta) {
			continue
		}
		for _, e := range estados {
			if a.Estado == e {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

type stubRecargaRepo struct {
	recargas []model.RecargaTelefonica
	failing  bool
}

func (r *stubRecargaRepo) Create(_ context.Context, rec *model.RecargaTelefonica) error {
	if r.failing {
		return errors.New("db unavailable")
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.recargas = append(r.recargas, *rec)
	return nil
}

func (r *stubRecargaRepo) ListByRange(_ context.Context, desde, hasta time.Time, estados ...string) ([]model.RecargaTelefonica, error) {
	if r.failing {
		return nil, errors.New("db unavailable")
	}
	var out []model.RecargaTelefonica
	for _, rec := range r.recargas {
		if rec.CreatedAt.Before(desde) || rec.CreatedAt.After(hasta) {
			continue
		}
		for _, e := range estados {
			if rec.Estado == e {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

type stubTasaRepo struct {
	tasas       []model.TasaBCV
	latestCalls int
}

func (r *stubTasaRepo) Create(_ context.Context, t *model.TasaBCV) error {
	t.ID = uint(len(r.tasas) + 1)
	if t.FechaRegistro.IsZero() {
		t.FechaRegistro = time.Now()
	}
	r.tasas = append(r.tasas, *t)
	return nil
}

func (r *stubTasaRepo) Latest(_ context.Context) (*model.TasaBCV, error) {
	r.latestCalls++
	if len(r.tasas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	t := r.tasas[len(r.tasas)-1]
	return &t, nil
}

func (r *stubTasaRepo) AsOf(_ context.Context, ts time.Time) (*model.TasaBCV, error) {
	var best *model.TasaBCV
	for i := range r.tasas {
		t := &r.tasas[i]
		if t.FechaRegistro.After(ts) {
			continue
		}
		if best == nil || t.FechaRegistro.After(best.FechaRegistro) {
			best = t
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

// stubFetcher returns a fixed rate or an error, standing in for the BCV page.
type stubFetcher struct {
	tasa decimal.Decimal
	err  error
}

func (f *stubFetcher) FetchTasa(_ context.Context) (decimal.Decimal, error) {
	return f.tasa, f.err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedProducto(t *testing.T, repo *stubProductoRepo, barcode, nombre string, precioVenta float64, upb, bultos float64) *model.Producto {
	t.Helper()
	p := &model.Producto{
		ID:               uuid.New(),
		CodigoBarras:     barcode,
		Nombre:           nombre,
		PrecioVenta:      decimal.NewFromFloat(precioVenta),
		UnidadesPorBulto: upb,
		StockBultos:      bultos,
		StockActual:      int(math.Round(bultos * upb)),
	}
	assert.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedTasa(t *testing.T, repo *stubTasaRepo, tasa float64, fecha time.Time) {
	t.Helper()
	assert.NoError(t, repo.Create(context.Background(), &model.TasaBCV{
		Tasa:          decimal.NewFromFloat(tasa),
		Fuente:        model.FuenteManual,
		FechaRegistro: fecha,
	}))
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	assert.NoError(t, err)
	return id
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/infra"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ReporteService interface {
	// Resumen buckets the period. Best-effort: a failing bucket query logs a
	// warning and contributes zero instead of aborting the summary.
	Resumen(ctx context.Context, filter dto.ReporteFilter) (*dto.ResumenReporteResponse, error)
	ExportarPDF(ctx context.Context, req dto.ExportarReporteRequest) (*dto.ExportarReporteResponse, error)
}

type reporteService struct {
	ventas        repository.VentaRepository
	avances       repository.AvanceRepository
	recargas      repository.RecargaRepository
	tasa          TasaService
	nombreNegocio string
	dataDir       string
}

func NewReporteService(
	ventas repository.VentaRepository,
	avances repository.AvanceRepository,
	recargas repository.RecargaRepository,
	tasa TasaService,
	nombreNegocio, dataDir string,
) ReporteService {
	return &reporteService{
		ventas:        ventas,
		avances:       avances,
		recargas:      recargas,
		tasa:          tasa,
		nombreNegocio: nombreNegocio,
		dataDir:       dataDir,
	}
}

func parseRango(filter dto.ReporteFilter) (time.Time, time.Time, error) {
	desde, err := time.ParseInLocation("2006-01-02", filter.Desde, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha desde invalida: %s", filter.Desde)
	}
	hasta, err := time.ParseInLocation("2006-01-02", filter.Hasta, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha hasta invalida: %s", filter.Hasta)
	}
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, fmt.Errorf("el rango de fechas esta invertido")
	}
	// End of day, so the whole closing date is included.
	hasta = hasta.Add(24*time.Hour - time.Second)
	return desde, hasta, nil
}

func (s *reporteService) Resumen(ctx context.Context, filter dto.ReporteFilter) (*dto.ResumenReporteResponse, error) {
	desde, hasta, err := parseRango(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenReporteResponse{
		Desde:            filter.Desde,
		Hasta:            filter.Hasta,
		VentasNeto:       decimal.Zero,
		Devoluciones:     decimal.Zero,
		AvancesEntregado: decimal.Zero,
		GananciaAvances:  decimal.Zero,
		RecargasBase:     decimal.Zero,
		GananciaRecargas: decimal.Zero,
	}

	// Ventas / devoluciones are stored in USD already.
	if ventas, err := s.ventas.ListByRange(ctx, desde, hasta, model.EstadoCompletada, model.EstadoDevolucion); err != nil {
		log.Warn().Err(err).Msg("reporte: consulta de ventas fallo, bucket en cero")
	} else {
		for _, v := range ventas {
			switch v.Estado {
			case model.EstadoCompletada:
				resp.VentasNeto = resp.VentasNeto.Add(v.TotalVenta)
			case model.EstadoDevolucion:
				resp.Devoluciones = resp.Devoluciones.Add(v.TotalVenta)
			}
		}
	}

	// Avances / recargas are stored in Bs; each entry converts with the rate
	// in force at its own timestamp, not a single period rate.
	if avances, err := s.avances.ListByRange(ctx, desde, hasta, model.EstadoConcretado); err != nil {
		log.Warn().Err(err).Msg("reporte: consulta de avances fallo, bucket en cero")
	} else {
		for _, a := range avances {
			resp.AvancesEntregado = resp.AvancesEntregado.Add(s.aUSD(ctx, a.MontoEntregado, a.CreatedAt))
			resp.GananciaAvances = resp.GananciaAvances.Add(s.aUSD(ctx, a.Comision, a.CreatedAt))
		}
	}

	if recargas, err := s.recargas.ListByRange(ctx, desde, hasta, model.EstadoConcretado); err != nil {
		log.Warn().Err(err).Msg("reporte: consulta de recargas fallo, bucket en cero")
	} else {
		for _, r := range recargas {
			resp.RecargasBase = resp.RecargasBase.Add(s.aUSD(ctx, r.MontoBase, r.CreatedAt))
			resp.GananciaRecargas = resp.GananciaRecargas.Add(s.aUSD(ctx, r.Comision, r.CreatedAt))
		}
	}

	resp.TotalGeneral = resp.VentasNeto.
		Sub(resp.Devoluciones).
		Add(resp.AvancesEntregado).
		Add(resp.GananciaAvances).
		Add(resp.RecargasBase).
		Add(resp.GananciaRecargas)

	// The headline Bs figure uses the single period-end rate. This is
	// deliberately different from the per-entry bucket conversions above.
	if cierre, err := s.tasa.AsOf(ctx, hasta); err == nil && cierre.Disponible {
		resp.TasaCierre = cierre.Tasa
		resp.TotalBs = resp.TotalGeneral.Mul(cierre.Tasa).Round(2)
		resp.TasaDisponible = true
	}

	return resp, nil
}

// aUSD converts a Bs amount with the rate as of ts; an unavailable or
// non-positive rate yields zero rather than an error.
func (s *reporteService) aUSD(ctx context.Context, montoBs decimal.Decimal, ts time.Time) decimal.Decimal {
	t, err := s.tasa.AsOf(ctx, ts)
	if err != nil || !t.Disponible || t.Tasa.Sign() <= 0 {
		return decimal.Zero
	}
	return montoBs.Div(t.Tasa).Round(2)
}

func (s *reporteService) ExportarPDF(ctx context.Context, req dto.ExportarReporteRequest) (*dto.ExportarReporteResponse, error) {
	filter := dto.ReporteFilter{Desde: req.Desde, Hasta: req.Hasta}
	resumen, err := s.Resumen(ctx, filter)
	if err != nil {
		return nil, err
	}
	desde, hasta, err := parseRango(filter)
	if err != nil {
		return nil, err
	}

	// Detail tables: export is best-effort like the summary, an empty
	// section is preferable to no report.
	ventas, err := s.ventas.ListByRange(ctx, desde, hasta, model.EstadoCompletada, model.EstadoDevolucion)
	if err != nil {
		log.Warn().Err(err).Msg("reporte: detalle de ventas fallo, seccion vacia")
	}
	avances, err := s.avances.ListByRange(ctx, desde, hasta, model.EstadoConcretado)
	if err != nil {
		log.Warn().Err(err).Msg("reporte: detalle de avances fallo, seccion vacia")
	}
	recargas, err := s.recargas.ListByRange(ctx, desde, hasta, model.EstadoConcretado)
	if err != nil {
		log.Warn().Err(err).Msg("reporte: detalle de recargas fallo, seccion vacia")
	}

	ruta := req.Ruta
	if ruta == "" {
		ruta = filepath.Join(s.dataDir, fmt.Sprintf("reporte_%s_%s.pdf", req.Desde, req.Hasta))
	}

	if err := infra.GenerarReportePDF(s.nombreNegocio, resumen, ventas, avances, recargas, ruta); err != nil {
		return nil, err
	}
	return &dto.ExportarReporteResponse{Ruta: ruta}, nil
}

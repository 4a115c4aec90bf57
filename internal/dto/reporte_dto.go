package dto

import "github.com/shopspring/decimal"

// ─── Request / Filter ────────────────────────────────────────────────────────

type ReporteFilter struct {
	Desde string `form:"desde" validate:"required"` // YYYY-MM-DD
	Hasta string `form:"hasta" validate:"required"` // YYYY-MM-DD
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ResumenReporteResponse buckets the period. USD columns for avances/recargas
// are converted per-entry with the rate in force at each entry's timestamp;
// the headline Bs conversion uses the single period-end rate. Both behaviors
// are intentional and must not be unified.
type ResumenReporteResponse struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`

	VentasNeto       decimal.Decimal `json:"ventas_neto"`
	Devoluciones     decimal.Decimal `json:"devoluciones"`
	AvancesEntregado decimal.Decimal `json:"avances_entregado"`
	GananciaAvances  decimal.Decimal `json:"ganancia_avances"`
	RecargasBase     decimal.Decimal `json:"recargas_base"`
	GananciaRecargas decimal.Decimal `json:"ganancia_recargas"`
	TotalGeneral     decimal.Decimal `json:"total_general"`

	TasaCierre   decimal.Decimal `json:"tasa_cierre"`
	TotalBs      decimal.Decimal `json:"total_bs"`
	TasaDisponible bool          `json:"tasa_disponible"`
}

type ExportarReporteRequest struct {
	Desde string `json:"desde" validate:"required"`
	Hasta string `json:"hasta" validate:"required"`
	// Ruta is the output path; empty writes into the data directory.
	Ruta string `json:"ruta"`
}

type ExportarReporteResponse struct {
	Ruta string `json:"ruta"`
}

package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarTasaManualRequest struct {
	Tasa decimal.Decimal `json:"tasa" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TasaResponse: Disponible=false means the history is empty and Tasa carries
// the zero sentinel; callers must not convert with it.
type TasaResponse struct {
	Tasa          decimal.Decimal `json:"tasa"`
	Fuente        string          `json:"fuente"`
	FechaRegistro string          `json:"fecha_registro"`
	Disponible    bool            `json:"disponible"`
}

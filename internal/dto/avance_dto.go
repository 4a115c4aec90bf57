package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarAvanceRequest records a cash advance. Estado Cancelado is a valid
// terminal outcome and is still written to the ledger for audit.
type RegistrarAvanceRequest struct {
	MontoEntregado decimal.Decimal `json:"monto_entregado" validate:"required"`
	MetodoPago     string          `json:"metodo_pago"     validate:"required,metodo_pago_avance"`
	Estado         string          `json:"estado"          validate:"required,oneof=Concretado Cancelado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AvanceResponse struct {
	ID             string          `json:"id"`
	Fecha          string          `json:"fecha"`
	Hora           string          `json:"hora"`
	MontoEntregado decimal.Decimal `json:"monto_entregado"`
	Comision       decimal.Decimal `json:"comision"`
	Total          decimal.Decimal `json:"total"`
	MetodoPago     string          `json:"metodo_pago"`
	Estado         string          `json:"estado"`
}

type AvanceListResponse struct {
	Data  []AvanceResponse `json:"data"`
	Total int64            `json:"total"`
}

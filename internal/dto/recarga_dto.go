package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarRecargaRequest struct {
	NumeroTelefono string          `json:"numero_telefono" validate:"required,telefono_ve"`
	MontoBase      decimal.Decimal `json:"monto_base"      validate:"required"`
	MetodoPago     string          `json:"metodo_pago"     validate:"required,metodo_pago_avance"`
	Estado         string          `json:"estado"          validate:"required,oneof=Concretado Cancelado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecargaResponse struct {
	ID             string          `json:"id"`
	Fecha          string          `json:"fecha"`
	Hora           string          `json:"hora"`
	NumeroTelefono string          `json:"numero_telefono"`
	MontoBase      decimal.Decimal `json:"monto_base"`
	Comision       decimal.Decimal `json:"comision"`
	Total          decimal.Decimal `json:"total"`
	MetodoPago     string          `json:"metodo_pago"`
	Estado         string          `json:"estado"`
}

type RecargaListResponse struct {
	Data  []RecargaResponse `json:"data"`
	Total int64             `json:"total"`
}

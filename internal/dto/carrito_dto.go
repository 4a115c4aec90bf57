package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarLineaRequest struct {
	CodigoBarras string `json:"codigo_barras" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaCarritoResponse struct {
	ProductoID   string          `json:"producto_id"`
	CodigoBarras string          `json:"codigo_barras"`
	Nombre       string          `json:"nombre"`
	PrecioU      decimal.Decimal `json:"precio_u"`
	Cantidad     int             `json:"cantidad"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	Tipo   string                 `json:"tipo"`
	Lineas []LineaCarritoResponse `json:"lineas"`
	Total  decimal.Decimal        `json:"total"`
}

package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CommitVentaRequest struct {
	MetodoPago string `json:"metodo_pago" validate:"required,metodo_pago_venta"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type VentaFilter struct {
	Desde  string `form:"desde"`  // YYYY-MM-DD
	Hasta  string `form:"hasta"`  // YYYY-MM-DD
	Estado string `form:"estado"` // Completada | Cancelada | Devolucion | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaVentaResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	PrecioU    decimal.Decimal `json:"precio_u"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID           string               `json:"id"`
	Fecha        string               `json:"fecha"`
	Hora         string               `json:"hora"`
	TotalVenta   decimal.Decimal      `json:"total_venta"`
	MontoTotalBs decimal.Decimal      `json:"monto_total_bs"`
	TasaBCV      decimal.Decimal      `json:"tasa_bcv"`
	MetodoPago   string               `json:"metodo_pago"`
	Estado       string               `json:"estado"`
	Lineas       []LineaVentaResponse `json:"lineas"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

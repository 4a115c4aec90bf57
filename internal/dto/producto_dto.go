package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest carries the purchase-side inputs; unit cost and sale
// price are derived server-side from bulto price, units per bulto and margin.
type CrearProductoRequest struct {
	CodigoBarras     string          `json:"codigo_barras"      validate:"required,min=4,max=18"`
	Nombre           string          `json:"nombre"             validate:"required,min=2,max=120"`
	Descripcion      *string         `json:"descripcion"`
	PrecioBulto      decimal.Decimal `json:"precio_bulto"       validate:"required"`
	UnidadesPorBulto float64         `json:"unidades_por_bulto" validate:"required,gt=0"`
	MargenPct        decimal.Decimal `json:"margen_pct"         validate:"min=0"`
	StockBultos      float64         `json:"stock_bultos"       validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre           *string          `json:"nombre"             validate:"omitempty,min=2,max=120"`
	Descripcion      *string          `json:"descripcion"`
	PrecioBulto      *decimal.Decimal `json:"precio_bulto"`
	UnidadesPorBulto *float64         `json:"unidades_por_bulto" validate:"omitempty,gt=0"`
	MargenPct        *decimal.Decimal `json:"margen_pct"`
}

type AgregarBultosRequest struct {
	Bultos float64 `json:"bultos" validate:"required,gt=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Barcode string `form:"barcode"`
	Nombre  string `form:"nombre"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               string          `json:"id"`
	CodigoBarras     string          `json:"codigo_barras"`
	Nombre           string          `json:"nombre"`
	Descripcion      *string         `json:"descripcion"`
	PrecioCosto      decimal.Decimal `json:"precio_costo"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioBulto      decimal.Decimal `json:"precio_bulto"`
	MargenPct        decimal.Decimal `json:"margen_pct"`
	UnidadesPorBulto float64         `json:"unidades_por_bulto"`
	StockActual      int             `json:"stock_actual"`
	StockBultos      float64         `json:"stock_bultos"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ConsultaPrecioResponse is the read-only price-check view at the counter.
type ConsultaPrecioResponse struct {
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	PrecioBs    decimal.Decimal `json:"precio_bs"`
	TasaBCV     decimal.Decimal `json:"tasa_bcv"`
	StockActual int             `json:"stock_actual"`
}

// SincronizarConteosResponse reports the maintenance sweep outcome.
type SincronizarConteosResponse struct {
	Revisados  int `json:"revisados"`
	Corregidos int `json:"corregidos"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger estados for the unified ventas table. Sales and returns share it,
// distinguished by Estado; entries are append-only and never mutated.
const (
	EstadoCompletada    = "Completada"
	EstadoCancelada     = "Cancelada"
	EstadoCierreForzado = "Cierre Forzado de App"
	EstadoDevolucion    = "Devolucion"
)

// Venta is one immutable ledger entry. Detalle carries a JSON snapshot of the
// lines as sold (id, name, unit price, quantity, subtotal) — copied, never a
// live reference, so hard-deleting a product leaves history intact.
type Venta struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// TotalVenta is in USD; MontoTotalBs = TotalVenta × TasaBCV at commit.
	TotalVenta   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoTotalBs decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TasaBCV      decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Detalle      string          `gorm:"type:text;not null"`
	MetodoPago   string          `gorm:"not null"`
	Estado       string          `gorm:"index;not null"`
	CreatedAt    time.Time       `gorm:"index"`
}

func (v *Venta) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// LineaDetalle is one snapshotted cart line inside Venta.Detalle.
type LineaDetalle struct {
	ProductoID string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	PrecioU    decimal.Decimal `json:"precio_u"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

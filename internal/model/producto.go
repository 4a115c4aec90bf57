package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto keeps a dual stock count: StockActual in sale units (integer) and
// StockBultos in purchasing bulks (real, may drift fractionally as sales debit
// it by cantidad/UnidadesPorBulto). A maintenance sweep reconciles the two.
type Producto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CodigoBarras string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"index;not null"`
	Descripcion  *string
	// PrecioCosto is derived: PrecioBulto / UnidadesPorBulto.
	PrecioCosto decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	// PrecioVenta is derived: PrecioCosto / ((100 - MargenPct) / 100).
	PrecioVenta      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioBulto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MargenPct        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	UnidadesPorBulto float64         `gorm:"not null"`
	StockActual      int             `gorm:"not null;default:0"`
	StockBultos      float64         `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BeforeCreate assigns the UUID client-side; SQLite has no uuid default.
func (p *Producto) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

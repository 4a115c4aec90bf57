package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fuentes for TasaBCV rows.
const (
	FuenteWebAuto   = "Web (BCV Auto)"
	FuenteWebManual = "Web (BCV Manual)"
	FuenteManual    = "Manual"
)

// TasaBCV is one exchange-rate observation. The autoincrement ID doubles as
// the recency order: "latest" is the highest-id row.
type TasaBCV struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Tasa          decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Fuente        string          `gorm:"not null"`
	FechaRegistro time.Time       `gorm:"index;not null"`
}

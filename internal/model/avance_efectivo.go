package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EstadoConcretado = "Concretado"
	// EstadoCancelado reuses the avance/recarga spelling (no accent in the store).
	EstadoCancelado = "Cancelado"
)

// AvanceEfectivo records a cash advance: the customer pays by card/transfer
// and receives cash minus nothing — the 20 % commission is charged on top.
type AvanceEfectivo struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MontoEntregado decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comision       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	MetodoPago     string          `gorm:"not null"`
	Estado         string          `gorm:"index;not null"`
	CreatedAt      time.Time       `gorm:"index"`
}

func (a *AvanceEfectivo) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

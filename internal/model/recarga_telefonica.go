package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecargaTelefonica records a phone top-up sold over the counter with a
// 15 % commission on the base amount.
type RecargaTelefonica struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NumeroTelefono string          `gorm:"not null"`
	MontoBase      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comision       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	MetodoPago     string          `gorm:"not null"`
	Estado         string          `gorm:"index;not null"`
	CreatedAt      time.Time       `gorm:"index"`
}

func (r *RecargaTelefonica) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

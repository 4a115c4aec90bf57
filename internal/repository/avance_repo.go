package repository

import (
	"context"
	"time"

	"github.com/Sijj2003/app-tienda/internal/model"

	"gorm.io/gorm"
)

// AvanceRepository persists cash-advance ledger entries (append-only).
type AvanceRepository interface {
	Create(ctx context.Context, a *model.AvanceEfectivo) error
	ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.AvanceEfectivo, error)
}

type avanceRepo struct{ db *gorm.DB }

func NewAvanceRepository(db *gorm.DB) AvanceRepository { return &avanceRepo{db: db} }

func (r *avanceRepo) Create(ctx context.Context, a *model.AvanceEfectivo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *avanceRepo) ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.AvanceEfectivo, error) {
	var avances []model.AvanceEfectivo
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", desde, hasta)
	if len(estados) > 0 {
		q = q.Where("estado IN ?", estados)
	}
	err := q.Order("created_at ASC").Find(&avances).Error
	return avances, err
}

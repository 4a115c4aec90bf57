package repository

import (
	"context"
	"time"

	"github.com/Sijj2003/app-tienda/internal/model"

	"gorm.io/gorm"
)

// RecargaRepository persists phone top-up ledger entries (append-only).
type RecargaRepository interface {
	Create(ctx context.Context, rec *model.RecargaTelefonica) error
	ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.RecargaTelefonica, error)
}

type recargaRepo struct{ db *gorm.DB }

func NewRecargaRepository(db *gorm.DB) RecargaRepository { return &recargaRepo{db: db} }

func (r *recargaRepo) Create(ctx context.Context, rec *model.RecargaTelefonica) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recargaRepo) ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.RecargaTelefonica, error) {
	var recargas []model.RecargaTelefonica
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", desde, hasta)
	if len(estados) > 0 {
		q = q.Where("estado IN ?", estados)
	}
	err := q.Order("created_at ASC").Find(&recargas).Error
	return recargas, err
}

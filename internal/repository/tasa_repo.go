package repository

import (
	"context"
	"time"

	"github.com/Sijj2003/app-tienda/internal/model"

	"gorm.io/gorm"
)

// TasaRepository persists exchange-rate observations.
type TasaRepository interface {
	Create(ctx context.Context, t *model.TasaBCV) error
	// Latest returns the highest-id row, or gorm.ErrRecordNotFound when the
	// history is empty.
	Latest(ctx context.Context) (*model.TasaBCV, error)
	// AsOf returns the most recent row registered at or before ts.
	AsOf(ctx context.Context, ts time.Time) (*model.TasaBCV, error)
}

type tasaRepo struct{ db *gorm.DB }

func NewTasaRepository(db *gorm.DB) TasaRepository { return &tasaRepo{db: db} }

func (r *tasaRepo) Create(ctx context.Context, t *model.TasaBCV) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tasaRepo) Latest(ctx context.Context) (*model.TasaBCV, error) {
	var t model.TasaBCV
	err := r.db.WithContext(ctx).Order("id DESC").First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tasaRepo) AsOf(ctx context.Context, ts time.Time) (*model.TasaBCV, error) {
	var t model.TasaBCV
	err := r.db.WithContext(ctx).
		Where("fecha_registro <= ?", ts).
		Order("fecha_registro DESC, id DESC").
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

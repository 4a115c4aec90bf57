package repository

import (
	"context"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"

	"gorm.io/gorm"
)

// VentaRepository persists ledger entries. Entries are append-only: there is
// intentionally no Update or Delete on this interface.
type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.Venta, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.Desde != "" {
		if t, err := time.ParseInLocation("2006-01-02", filter.Desde, time.Local); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if filter.Hasta != "" {
		if t, err := time.ParseInLocation("2006-01-02", filter.Hasta, time.Local); err == nil {
			q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListByRange(ctx context.Context, desde, hasta time.Time, estados ...string) ([]model.Venta, error) {
	var ventas []model.Venta
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", desde, hasta)
	if len(estados) > 0 {
		q = q.Where("estado IN ?", estados)
	}
	err := q.Order("created_at ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/shopspring/decimal"
)

// Payment methods accepted for advances and recharges: the customer pays
// electronically and receives cash/airtime.
var MetodosPagoAvance = []string{"Punto de Venta", "Pago Móvil", "BioPago"}

// comisionAvancePct: the 20 % fee charged on top of the delivered amount.
var comisionAvancePct = decimal.NewFromFloat(0.20)

type AvanceService interface {
	Registrar(ctx context.Context, req dto.RegistrarAvanceRequest) (*dto.AvanceResponse, error)
}

type avanceService struct {
	repo repository.AvanceRepository
}

func NewAvanceService(repo repository.AvanceRepository) AvanceService {
	return &avanceService{repo: repo}
}

func (s *avanceService) Registrar(ctx context.Context, req dto.RegistrarAvanceRequest) (*dto.AvanceResponse, error) {
	if req.MontoEntregado.Sign() <= 0 {
		return nil, errors.New("el monto entregado debe ser mayor a cero")
	}
	if !contiene(MetodosPagoAvance, req.MetodoPago) {
		return nil, fmt.Errorf("metodo de pago invalido: %s", req.MetodoPago)
	}
	if req.Estado != model.EstadoConcretado && req.Estado != model.EstadoCancelado {
		return nil, fmt.Errorf("estado invalido: %s", req.Estado)
	}

	comision := req.MontoEntregado.Mul(comisionAvancePct).Round(2)
	a := &model.AvanceEfectivo{
		MontoEntregado: req.MontoEntregado,
		Comision:       comision,
		Total:          req.MontoEntregado.Add(comision),
		MetodoPago:     req.MetodoPago,
		Estado:         req.Estado,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return avanceToResponse(a), nil
}

func avanceToResponse(a *model.AvanceEfectivo) *dto.AvanceResponse {
	return &dto.AvanceResponse{
		ID:             a.ID.String(),
		Fecha:          a.CreatedAt.Format("2006-01-02"),
		Hora:           a.CreatedAt.Format("15:04:05"),
		MontoEntregado: a.MontoEntregado,
		Comision:       a.Comision,
		Total:          a.Total,
		MetodoPago:     a.MetodoPago,
		Estado:         a.Estado,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/shopspring/decimal"
)

// PrefijosTelefonicos are the mobile carrier prefixes accepted for top-ups.
var PrefijosTelefonicos = []string{"0414", "0424", "0412", "0422", "0416", "0426"}

var comisionRecargaPct = decimal.NewFromFloat(0.15)

type RecargaService interface {
	Registrar(ctx context.Context, req dto.RegistrarRecargaRequest) (*dto.RecargaResponse, error)
}

type recargaService struct {
	repo repository.RecargaRepository
}

func NewRecargaService(repo repository.RecargaRepository) RecargaService {
	return &recargaService{repo: repo}
}

// TelefonoValido checks prefix + 7 digits (11 characters total).
func TelefonoValido(numero string) bool {
	if len(numero) != 11 {
		return false
	}
	if !contiene(PrefijosTelefonicos, numero[:4]) {
		return false
	}
	for _, r := range numero[4:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (s *recargaService) Registrar(ctx context.Context, req dto.RegistrarRecargaRequest) (*dto.RecargaResponse, error) {
	if req.MontoBase.Sign() <= 0 {
		return nil, errors.New("el monto base debe ser mayor a cero")
	}
	if !TelefonoValido(req.NumeroTelefono) {
		return nil, fmt.Errorf("numero de telefono invalido: %s", req.NumeroTelefono)
	}
	if !contiene(MetodosPagoAvance, req.MetodoPago) {
		return nil, fmt.Errorf("metodo de pago invalido: %s", req.MetodoPago)
	}
	if req.Estado != model.EstadoConcretado && req.Estado != model.EstadoCancelado {
		return nil, fmt.Errorf("estado invalido: %s", req.Estado)
	}

	comision := req.MontoBase.Mul(comisionRecargaPct).Round(2)
	rec := &model.RecargaTelefonica{
		NumeroTelefono: req.NumeroTelefono,
		MontoBase:      req.MontoBase,
		Comision:       comision,
		Total:          req.MontoBase.Add(comision),
		MetodoPago:     req.MetodoPago,
		Estado:         req.Estado,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return recargaToResponse(rec), nil
}

func recargaToResponse(r *model.RecargaTelefonica) *dto.RecargaResponse {
	return &dto.RecargaResponse{
		ID:             r.ID.String(),
		Fecha:          r.CreatedAt.Format("2006-01-02"),
		Hora:           r.CreatedAt.Format("15:04:05"),
		NumeroTelefono: r.NumeroTelefono,
		MontoBase:      r.MontoBase,
		Comision:       r.Comision,
		Total:          r.Total,
		MetodoPago:     r.MetodoPago,
		Estado:         r.Estado,
	}
}

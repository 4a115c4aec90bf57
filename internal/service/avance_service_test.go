package service_test

import (
	"context"
	"testing"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRegistrarAvance_ComisionVeinte(t *testing.T) {
	repo := &stubAvanceRepo{}
	svc := service.NewAvanceService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarAvanceRequest{
		MontoEntregado: dec("100"),
		MetodoPago:     "Punto de Venta",
		Estado:         model.EstadoConcretado,
	})

	assert.NoError(t, err)
	assertDecEqual(t, "20", resp.Comision)
	assertDecEqual(t, "120", resp.Total)
	assert.Equal(t, model.EstadoConcretado, resp.Estado)
	assert.Len(t, repo.avances, 1)
}

func TestRegistrarAvance_ComisionRedondeada(t *testing.T) {
	svc := service.NewAvanceService(&stubAvanceRepo{})

	resp, err := svc.Registrar(context.Background(), dto.RegistrarAvanceRequest{
		MontoEntregado: dec("33.33"),
		MetodoPago:     "Pago Móvil",
		Estado:         model.EstadoConcretado,
	})

	assert.NoError(t, err)
	// 33.33 × 0.20 = 6.666 → 6.67
	assertDecEqual(t, "6.67", resp.Comision)
	assertDecEqual(t, "40.00", resp.Total)
}

func TestRegistrarAvance_CanceladoQuedaEnElLibro(t *testing.T) {
	repo := &stubAvanceRepo{}
	svc := service.NewAvanceService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarAvanceRequest{
		MontoEntregado: dec("50"),
		MetodoPago:     "BioPago",
		Estado:         model.EstadoCancelado,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.EstadoCancelado, resp.Estado)
	assert.Len(t, repo.avances, 1)
}

func TestRegistrarAvance_EntradasInvalidas(t *testing.T) {
	svc := service.NewAvanceService(&stubAvanceRepo{})
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarAvanceRequest{
		MontoEntregado: dec("0"), MetodoPago: "Punto de Venta", Estado: model.EstadoConcretado,
	})
	assert.Error(t, err)

	// Efectivo vale para ventas pero no para avances.
	_, err = svc.Registrar(ctx, dto.RegistrarAvanceRequest{
		MontoEntregado: dec("100"), MetodoPago: "Efectivo", Estado: model.EstadoConcretado,
	})
	assert.ErrorContains(t, err, "metodo de pago invalido")

	_, err = svc.Registrar(ctx, dto.RegistrarAvanceRequest{
		MontoEntregado: dec("100"), MetodoPago: "Punto de Venta", Estado: "Pendiente",
	})
	assert.ErrorContains(t, err, "estado invalido")
}

package service_test

import (
	"context"
	"testing"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRegistrarRecarga_ComisionQuince(t *testing.T) {
	repo := &stubRecargaRepo{}
	svc := service.NewRecargaService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRecargaRequest{
		NumeroTelefono: "04141234567",
		MontoBase:      dec("50"),
		MetodoPago:     "Pago Móvil",
		Estado:         model.EstadoConcretado,
	})

	assert.NoError(t, err)
	assertDecEqual(t, "7.5", resp.Comision)
	assertDecEqual(t, "57.5", resp.Total)
	assert.Equal(t, "04141234567", resp.NumeroTelefono)
	assert.Len(t, repo.recargas, 1)
}

func TestTelefonoValido(t *testing.T) {
	validos := []string{
		"04141234567", "04241234567", "04121234567",
		"04221234567", "04161234567", "04261234567",
	}
	for _, n := range validos {
		assert.True(t, service.TelefonoValido(n), n)
	}

	invalidos := []string{
		"04151234567", // prefijo inexistente
		"0414123456",  // corto
		"041412345678", // largo
		"0414123456a", // no numérico
		"4141234567",  // sin el cero
		"",
	}
	for _, n := range invalidos {
		assert.False(t, service.TelefonoValido(n), n)
	}
}

func TestRegistrarRecarga_EntradasInvalidas(t *testing.T) {
	svc := service.NewRecargaService(&stubRecargaRepo{})
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarRecargaRequest{
		NumeroTelefono: "04151234567", MontoBase: dec("10"),
		MetodoPago: "Pago Móvil", Estado: model.EstadoConcretado,
	})
	assert.ErrorContains(t, err, "telefono invalido")

	_, err = svc.Registrar(ctx, dto.RegistrarRecargaRequest{
		NumeroTelefono: "04141234567", MontoBase: dec("-5"),
		MetodoPago: "Pago Móvil", Estado: model.EstadoConcretado,
	})
	assert.Error(t, err)

	_, err = svc.Registrar(ctx, dto.RegistrarRecargaRequest{
		NumeroTelefono: "04141234567", MontoBase: dec("10"),
		MetodoPago: "Divisa", Estado: model.EstadoConcretado,
	})
	assert.ErrorContains(t, err, "metodo de pago invalido")
}

func TestRegistrarRecarga_Cancelada(t *testing.T) {
	repo := &stubRecargaRepo{}
	svc := service.NewRecargaService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRecargaRequest{
		NumeroTelefono: "04261234567",
		MontoBase:      dec("20"),
		MetodoPago:     "BioPago",
		Estado:         model.EstadoCancelado,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.EstadoCancelado, resp.Estado)
	assert.Len(t, repo.recargas, 1)
}

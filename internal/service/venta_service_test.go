package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/stretchr/testify/assert"
)

type ventaFixture struct {
	productos *stubProductoRepo
	ventas    *stubVentaRepo
	tasas     *stubTasaRepo
	carrito   service.CarritoService
	svc       service.VentaService
}

func newVentaFixture() *ventaFixture {
	productos := newStubProductoRepo()
	ventas := &stubVentaRepo{}
	tasas := &stubTasaRepo{}
	tasaSvc := service.NewTasaService(tasas, &stubFetcher{})
	inventarioSvc := service.NewInventarioService(productos, tasaSvc)
	carritoSvc := service.NewCarritoService(productos)
	return &ventaFixture{
		productos: productos,
		ventas:    ventas,
		tasas:     tasas,
		carrito:   carritoSvc,
		svc:       service.NewVentaService(ventas, inventarioSvc, carritoSvc, tasaSvc),
	}
}

func (f *ventaFixture) escanear(t *testing.T, tipo, barcode string, veces int) {
	t.Helper()
	for i := 0; i < veces; i++ {
		_, err := f.carrito.Agregar(context.Background(), tipo, barcode)
		assert.NoError(t, err)
	}
}

// ── Tests: CommitVenta ───────────────────────────────────────────────────────

func TestCommitVenta_DebitaStockYRegistra(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	p := seedProducto(t, f.productos, "7591111111111", "Harina PAN", 3.13, 10, 2)
	q := seedProducto(t, f.productos, "7592222222222", "Aceite", 4.00, 6, 1)
	seedTasa(t, f.tasas, 100.0, time.Now())

	f.escanear(t, service.CarritoVenta, "7591111111111", 3)
	f.escanear(t, service.CarritoVenta, "7592222222222", 1)

	resp, err := f.svc.CommitVenta(ctx, dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.NoError(t, err)

	assert.Equal(t, model.EstadoCompletada, resp.Estado)
	assertDecEqual(t, "13.39", resp.TotalVenta) // 3×3.13 + 4.00
	assertDecEqual(t, "100", resp.TasaBCV)
	assertDecEqual(t, "1339", resp.MontoTotalBs)
	assert.Len(t, resp.Lineas, 2)

	// Stock debitado en ambos conteos
	assert.Equal(t, 17, f.productos.productos[p.ID].StockActual)
	assert.InDelta(t, 1.7, f.productos.productos[p.ID].StockBultos, 0.0001)
	assert.Equal(t, 5, f.productos.productos[q.ID].StockActual)

	// Una sola entrada en el libro, carrito vacío
	assert.Len(t, f.ventas.ventas, 1)
	carrito, err := f.carrito.Ver(ctx, service.CarritoVenta)
	assert.NoError(t, err)
	assert.Empty(t, carrito.Lineas)
}

func TestCommitVenta_StockInsuficiente_NoRegistraYConservaCarrito(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	p := seedProducto(t, f.productos, "7593333333333", "Café", 5.00, 4, 1)
	f.escanear(t, service.CarritoVenta, "7593333333333", 4)

	// Otro terminal vendió mientras el ticket estaba armado.
	f.productos.productos[p.ID].StockActual = 2

	_, err := f.svc.CommitVenta(ctx, dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)

	// Sin entrada en el libro; el carrito sigue armado para corregir.
	assert.Empty(t, f.ventas.ventas)
	carrito, err := f.carrito.Ver(ctx, service.CarritoVenta)
	assert.NoError(t, err)
	assert.Len(t, carrito.Lineas, 1)
	assert.Equal(t, 4, carrito.Lineas[0].Cantidad)
	assert.Equal(t, 2, f.productos.productos[p.ID].StockActual)
}

func TestCommitVenta_CarritoVacio(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.CommitVenta(context.Background(), dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.ErrorIs(t, err, service.ErrCarritoVacio)
}

func TestCommitVenta_MetodoPagoInvalido(t *testing.T) {
	f := newVentaFixture()
	seedProducto(t, f.productos, "7594444444444", "Arroz", 2.00, 10, 1)
	f.escanear(t, service.CarritoVenta, "7594444444444", 1)

	_, err := f.svc.CommitVenta(context.Background(), dto.CommitVentaRequest{MetodoPago: "Trueque"})
	assert.ErrorContains(t, err, "metodo de pago invalido")
	assert.Empty(t, f.ventas.ventas)
}

func TestCommitVenta_SinTasaConvierteUnoAUno(t *testing.T) {
	f := newVentaFixture()
	seedProducto(t, f.productos, "7595555555555", "Atún", 2.50, 24, 1)
	f.escanear(t, service.CarritoVenta, "7595555555555", 2)

	// Sin historial de tasas la entrada registra tasa 1 y el monto en Bs
	// replica el total en USD.
	resp, err := f.svc.CommitVenta(context.Background(), dto.CommitVentaRequest{MetodoPago: "Divisa"})
	assert.NoError(t, err)
	assertDecEqual(t, "1", resp.TasaBCV)
	assertDecEqual(t, "5", resp.MontoTotalBs)
	assertDecEqual(t, "5", resp.TotalVenta)
}

// ── Tests: CommitDevolucion ──────────────────────────────────────────────────

func TestCommitDevolucion_AcreditaStock(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	p := seedProducto(t, f.productos, "7596666666666", "Leche", 1.80, 12, 1)
	f.escanear(t, service.CarritoDevolucion, "7596666666666", 2)

	resp, err := f.svc.CommitDevolucion(ctx, dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.NoError(t, err)
	assert.Equal(t, model.EstadoDevolucion, resp.Estado)

	assert.Equal(t, 14, f.productos.productos[p.ID].StockActual)
	assert.InDelta(t, 1.1667, f.productos.productos[p.ID].StockBultos, 0.0001)

	carrito, err := f.carrito.Ver(ctx, service.CarritoDevolucion)
	assert.NoError(t, err)
	assert.Empty(t, carrito.Lineas)
}

// ── Tests: variantes sin inventario ──────────────────────────────────────────

func TestCommitCancelada_NoTocaInventario(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	p := seedProducto(t, f.productos, "7597777777777", "Pan", 1.00, 8, 1)
	f.escanear(t, service.CarritoVenta, "7597777777777", 3)

	resp, err := f.svc.CommitCancelada(ctx, dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.NoError(t, err)
	assert.Equal(t, model.EstadoCancelada, resp.Estado)

	// Auditoría sí, inventario no.
	assert.Len(t, f.ventas.ventas, 1)
	assert.Equal(t, 8, f.productos.productos[p.ID].StockActual)

	carrito, err := f.carrito.Ver(ctx, service.CarritoVenta)
	assert.NoError(t, err)
	assert.Empty(t, carrito.Lineas)
}

func TestCommitCierreForzado(t *testing.T) {
	f := newVentaFixture()

	p := seedProducto(t, f.productos, "7598888888888", "Queso", 6.00, 4, 1)
	f.escanear(t, service.CarritoVenta, "7598888888888", 1)

	resp, err := f.svc.CommitCierreForzado(context.Background(), dto.CommitVentaRequest{MetodoPago: "Efectivo"})
	assert.NoError(t, err)
	assert.Equal(t, model.EstadoCierreForzado, resp.Estado)
	assert.Equal(t, 4, f.productos.productos[p.ID].StockActual)
}

// ── Tests: snapshot de detalle ───────────────────────────────────────────────

func TestCommitVenta_DetalleSobreviveAlBorradoDelProducto(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	p := seedProducto(t, f.productos, "7599999999999", "Descontinuado", 9.99, 1, 5)
	f.escanear(t, service.CarritoVenta, "7599999999999", 1)

	_, err := f.svc.CommitVenta(ctx, dto.CommitVentaRequest{MetodoPago: "Punto de Venta"})
	assert.NoError(t, err)

	// El producto se elimina después; la venta conserva su snapshot.
	assert.NoError(t, f.productos.Delete(ctx, p.ID))

	lista, err := f.svc.ListVentas(ctx, dto.VentaFilter{})
	assert.NoError(t, err)
	assert.Len(t, lista.Data, 1)
	assert.Equal(t, "Descontinuado", lista.Data[0].Lineas[0].Nombre)
	assertDecEqual(t, "9.99", lista.Data[0].Lineas[0].PrecioU)
}

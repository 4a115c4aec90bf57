package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment methods accepted for sales and returns.
var MetodosPagoVenta = []string{"Efectivo", "Divisa", "Punto de Venta", "Biopago", "Pago Móvil"}

type VentaService interface {
	// CommitVenta drains the sale cart into one Completada ledger entry,
	// debiting stock atomically. Insufficient stock on any line rolls the
	// whole unit back and leaves the cart staged for correction.
	CommitVenta(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error)
	// CommitDevolucion drains the return cart, crediting stock (no ceiling).
	CommitDevolucion(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error)
	// CommitCancelada records the abandoned sale for audit; inventory is
	// never touched because nothing was debited at staging time.
	CommitCancelada(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error)
	// CommitCierreForzado is the cancellation variant written when the host
	// application closes with a non-empty cart.
	CommitCierreForzado(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	inventario InventarioService
	carrito    CarritoService
	tasa       TasaService
}

func NewVentaService(
	repo repository.VentaRepository,
	inventario InventarioService,
	carrito CarritoService,
	tasa TasaService,
) VentaService {
	return &ventaService{repo: repo, inventario: inventario, carrito: carrito, tasa: tasa}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *ventaService) CommitVenta(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error) {
	return s.commitConInventario(ctx, CarritoVenta, req.MetodoPago, model.EstadoCompletada, -1)
}

func (s *ventaService) CommitDevolucion(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error) {
	return s.commitConInventario(ctx, CarritoDevolucion, req.MetodoPago, model.EstadoDevolucion, +1)
}

func (s *ventaService) CommitCancelada(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error) {
	return s.commitSoloLedger(ctx, req.MetodoPago, model.EstadoCancelada)
}

func (s *ventaService) CommitCierreForzado(ctx context.Context, req dto.CommitVentaRequest) (*dto.VentaResponse, error) {
	return s.commitSoloLedger(ctx, req.MetodoPago, model.EstadoCierreForzado)
}

// commitConInventario is the shared sale/return path: one transaction covers
// every stock delta plus the single ledger append. signo is -1 for sales and
// +1 for returns.
func (s *ventaService) commitConInventario(ctx context.Context, tipoCarrito, metodoPago, estado string, signo int) (*dto.VentaResponse, error) {
	lineas, err := s.carrito.lineasDe(tipoCarrito)
	if err != nil {
		return nil, err
	}
	if len(lineas) == 0 {
		return nil, ErrCarritoVacio
	}

	venta, err := s.armarVenta(ctx, lineas, metodoPago, estado)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, l := range lineas {
			if err := s.inventario.AplicarDeltaTx(tx, l.ProductoID, signo*l.Cantidad); err != nil {
				return err
			}
		}
		return s.repo.Create(ctx, tx, venta)
	})
	if txErr != nil {
		// Cart stays staged so the operator can correct and retry.
		return nil, txErr
	}

	if err := s.carrito.Vaciar(ctx, tipoCarrito); err != nil {
		return nil, err
	}
	return ventaToResponse(venta), nil
}

// commitSoloLedger writes the audit entry without touching inventory.
func (s *ventaService) commitSoloLedger(ctx context.Context, metodoPago, estado string) (*dto.VentaResponse, error) {
	lineas, err := s.carrito.lineasDe(CarritoVenta)
	if err != nil {
		return nil, err
	}
	if len(lineas) == 0 {
		return nil, ErrCarritoVacio
	}

	venta, err := s.armarVenta(ctx, lineas, metodoPago, estado)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.carrito.Vaciar(ctx, CarritoVenta); err != nil {
		return nil, err
	}
	return ventaToResponse(venta), nil
}

// armarVenta builds the immutable entry: totals, rate-at-commit and the JSON
// line snapshot. An empty rate history falls back to 1, so the Bs column
// mirrors the USD total instead of zeroing out.
func (s *ventaService) armarVenta(ctx context.Context, lineas []lineaCarrito, metodoPago, estado string) (*model.Venta, error) {
	if !contiene(MetodosPagoVenta, metodoPago) {
		return nil, fmt.Errorf("metodo de pago invalido: %s", metodoPago)
	}

	total := decimal.Zero
	detalle := make([]model.LineaDetalle, 0, len(lineas))
	for _, l := range lineas {
		subtotal := l.PrecioU.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		total = total.Add(subtotal)
		detalle = append(detalle, model.LineaDetalle{
			ProductoID: l.ProductoID.String(),
			Nombre:     l.Nombre,
			Cantidad:   l.Cantidad,
			PrecioU:    l.PrecioU,
			Subtotal:   subtotal,
		})
	}

	raw, err := json.Marshal(detalle)
	if err != nil {
		return nil, fmt.Errorf("serializando detalle: %w", err)
	}

	tasa := decimal.NewFromInt(1)
	if t, err := s.tasa.Latest(ctx); err == nil && t.Disponible {
		tasa = t.Tasa
	}

	return &model.Venta{
		TotalVenta:   total,
		MontoTotalBs: total.Mul(tasa).Round(2),
		TasaBCV:      tasa,
		Detalle:      string(raw),
		MetodoPago:   metodoPago,
		Estado:       estado,
	}, nil
}

func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	var detalle []model.LineaDetalle
	// A snapshot that fails to parse still yields the entry header.
	if err := json.Unmarshal([]byte(v.Detalle), &detalle); err != nil {
		detalle = nil
	}
	lineas := make([]dto.LineaVentaResponse, 0, len(detalle))
	for _, d := range detalle {
		lineas = append(lineas, dto.LineaVentaResponse{
			ProductoID: d.ProductoID,
			Nombre:     d.Nombre,
			Cantidad:   d.Cantidad,
			PrecioU:    d.PrecioU,
			Subtotal:   d.Subtotal,
		})
	}
	return &dto.VentaResponse{
		ID:           v.ID.String(),
		Fecha:        v.CreatedAt.Format("2006-01-02"),
		Hora:         v.CreatedAt.Format("15:04:05"),
		TotalVenta:   v.TotalVenta,
		MontoTotalBs: v.MontoTotalBs,
		TasaBCV:      v.TasaBCV,
		MetodoPago:   v.MetodoPago,
		Estado:       v.Estado,
		Lineas:       lineas,
	}
}

func contiene(valores []string, v string) bool {
	for _, x := range valores {
		if x == v {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrStockInsuficiente aborts the enclosing sale transaction; the caller's
// rollback leaves stock and ledger untouched.
var ErrStockInsuficiente = errors.New("stock insuficiente")

// conteoTolerancia is the drift beyond which the reconciliation sweep
// overwrites the unit counter.
const conteoTolerancia = 0.001

type InventarioService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ObtenerPorBarcode(ctx context.Context, barcode string) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	AgregarBultos(ctx context.Context, id uuid.UUID, bultos float64) (*dto.ProductoResponse, error)
	ConsultarPrecio(ctx context.Context, barcode string) (*dto.ConsultaPrecioResponse, error)
	SincronizarConteos(ctx context.Context) (*dto.SincronizarConteosResponse, error)

	// AplicarDeltaTx adjusts both stock counters by a signed unit delta inside
	// the caller's transaction. Sale debits re-check stock at this point.
	AplicarDeltaTx(tx *gorm.DB, productoID uuid.UUID, unidades int) error
}

type inventarioService struct {
	repo repository.ProductoRepository
	tasa TasaService
}

func NewInventarioService(repo repository.ProductoRepository, tasa TasaService) InventarioService {
	return &inventarioService{repo: repo, tasa: tasa}
}

// derivarPrecios computes unit cost and sale price from the purchase-side
// figures: costo = precio_bulto / unidades, venta = costo / ((100-margen)/100).
// A margin at or above 100 makes the divisor non-positive and is rejected.
func derivarPrecios(precioBulto decimal.Decimal, unidadesPorBulto float64, margenPct decimal.Decimal) (costo, venta decimal.Decimal, err error) {
	if unidadesPorBulto <= 0 {
		return decimal.Zero, decimal.Zero, errors.New("unidades por bulto debe ser mayor a cero")
	}
	if precioBulto.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, errors.New("precio del bulto debe ser mayor a cero")
	}
	cien := decimal.NewFromInt(100)
	if margenPct.GreaterThanOrEqual(cien) {
		return decimal.Zero, decimal.Zero, errors.New("margen debe ser menor a 100%")
	}
	if margenPct.Sign() < 0 {
		return decimal.Zero, decimal.Zero, errors.New("margen no puede ser negativo")
	}

	costo = precioBulto.Div(decimal.NewFromFloat(unidadesPorBulto))
	factor := cien.Sub(margenPct).Div(cien)
	venta = costo.Div(factor).Round(2)
	return costo, venta, nil
}

func (s *inventarioService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if existing, err := s.repo.FindByBarcode(ctx, req.CodigoBarras); err == nil && existing != nil {
		return nil, fmt.Errorf("ya existe un producto con codigo %s", req.CodigoBarras)
	}

	costo, venta, err := derivarPrecios(req.PrecioBulto, req.UnidadesPorBulto, req.MargenPct)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		CodigoBarras:     req.CodigoBarras,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		PrecioCosto:      costo,
		PrecioVenta:      venta,
		PrecioBulto:      req.PrecioBulto,
		MargenPct:        req.MargenPct,
		UnidadesPorBulto: req.UnidadesPorBulto,
		StockBultos:      req.StockBultos,
		StockActual:      int(math.Round(req.StockBultos * req.UnidadesPorBulto)),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *inventarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioBulto != nil {
		p.PrecioBulto = *req.PrecioBulto
	}
	if req.UnidadesPorBulto != nil {
		p.UnidadesPorBulto = *req.UnidadesPorBulto
	}
	if req.MargenPct != nil {
		p.MargenPct = *req.MargenPct
	}

	// Prices are always re-derived on edit, never stored directly.
	costo, venta, err := derivarPrecios(p.PrecioBulto, p.UnidadesPorBulto, p.MargenPct)
	if err != nil {
		return nil, err
	}
	p.PrecioCosto = costo
	p.PrecioVenta = venta

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *inventarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *inventarioService) ObtenerPorBarcode(ctx context.Context, barcode string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventarioService) AgregarBultos(ctx context.Context, id uuid.UUID, bultos float64) (*dto.ProductoResponse, error) {
	if bultos <= 0 {
		return nil, errors.New("la cantidad de bultos debe ser mayor a cero")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	p.StockBultos += bultos
	p.StockActual = int(math.Round(p.StockBultos * p.UnidadesPorBulto))
	if err := s.repo.SetConteos(ctx, p.ID, p.StockActual, p.StockBultos); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *inventarioService) ConsultarPrecio(ctx context.Context, barcode string) (*dto.ConsultaPrecioResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	resp := &dto.ConsultaPrecioResponse{
		Nombre:      p.Nombre,
		PrecioVenta: p.PrecioVenta,
		StockActual: p.StockActual,
	}
	if tasa, err := s.tasa.Latest(ctx); err == nil && tasa.Disponible {
		resp.TasaBCV = tasa.Tasa
		resp.PrecioBs = p.PrecioVenta.Mul(tasa.Tasa).Round(2)
	}
	return resp, nil
}

// SincronizarConteos repairs float drift accumulated by fractional bulk
// debits: the unit counter is overwritten with round(bultos × unidades) when
// the two disagree by more than the tolerance.
func (s *inventarioService) SincronizarConteos(ctx context.Context) (*dto.SincronizarConteosResponse, error) {
	productos, err := s.repo.ListConBultos(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.SincronizarConteosResponse{}
	for i := range productos {
		p := &productos[i]
		resp.Revisados++
		teorico := math.Round(p.StockBultos * p.UnidadesPorBulto)
		if math.Abs(teorico-float64(p.StockActual)) > conteoTolerancia {
			if err := s.repo.SetConteos(ctx, p.ID, int(teorico), p.StockBultos); err != nil {
				return nil, err
			}
			resp.Corregidos++
		}
	}
	return resp, nil
}

func (s *inventarioService) AplicarDeltaTx(tx *gorm.DB, productoID uuid.UUID, unidades int) error {
	p, err := s.repo.FindByIDTx(tx, productoID)
	if err != nil {
		return fmt.Errorf("producto %s no encontrado", productoID)
	}
	if unidades < 0 && p.StockActual < -unidades {
		return fmt.Errorf("%w: %s (disponible %d, solicitado %d)",
			ErrStockInsuficiente, p.Nombre, p.StockActual, -unidades)
	}

	bultos := 0.0
	if p.UnidadesPorBulto > 0 {
		bultos = float64(unidades) / p.UnidadesPorBulto
	}
	return s.repo.UpdateStockTx(tx, productoID, unidades, bultos)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID.String(),
		CodigoBarras:     p.CodigoBarras,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		PrecioCosto:      p.PrecioCosto,
		PrecioVenta:      p.PrecioVenta,
		PrecioBulto:      p.PrecioBulto,
		MargenPct:        p.MargenPct,
		UnidadesPorBulto: p.UnidadesPorBulto,
		StockActual:      p.StockActual,
		StockBultos:      p.StockBultos,
	}
}

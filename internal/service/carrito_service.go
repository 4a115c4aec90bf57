package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart tipos. The venta cart enforces the stock ceiling at add time; the
// devolucion cart has none.
const (
	CarritoVenta      = "venta"
	CarritoDevolucion = "devolucion"
)

var ErrCarritoVacio = errors.New("el carrito esta vacio")

// lineaCarrito is one staged line. PrecioU is snapshotted at add time and is
// not re-fetched at commit.
type lineaCarrito struct {
	ProductoID   uuid.UUID
	CodigoBarras string
	Nombre       string
	PrecioU      decimal.Decimal
	Cantidad     int
}

// carrito keeps lines in insertion order: orden holds product IDs, lineas is
// the lookup map.
type carrito struct {
	orden  []uuid.UUID
	lineas map[uuid.UUID]*lineaCarrito
}

func nuevoCarrito() *carrito {
	return &carrito{lineas: make(map[uuid.UUID]*lineaCarrito)}
}

type CarritoService interface {
	Agregar(ctx context.Context, tipo, barcode string) (*dto.CarritoResponse, error)
	Quitar(ctx context.Context, tipo string, productoID uuid.UUID) (*dto.CarritoResponse, error)
	Ver(ctx context.Context, tipo string) (*dto.CarritoResponse, error)
	Vaciar(ctx context.Context, tipo string) error

	// lineas returns a copy of the staged lines in insertion order; used by
	// the commit paths.
	lineasDe(tipo string) ([]lineaCarrito, error)
}

type carritoService struct {
	mu       sync.Mutex
	carritos map[string]*carrito
	repo     repository.ProductoRepository
}

func NewCarritoService(repo repository.ProductoRepository) CarritoService {
	return &carritoService{
		carritos: map[string]*carrito{
			CarritoVenta:      nuevoCarrito(),
			CarritoDevolucion: nuevoCarrito(),
		},
		repo: repo,
	}
}

func (s *carritoService) carritoDe(tipo string) (*carrito, error) {
	c, ok := s.carritos[tipo]
	if !ok {
		return nil, fmt.Errorf("tipo de carrito desconocido: %s", tipo)
	}
	return c, nil
}

func (s *carritoService) Agregar(ctx context.Context, tipo, barcode string) (*dto.CarritoResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carritoDe(tipo)
	if err != nil {
		return nil, err
	}

	staged := 0
	if linea, ok := c.lineas[p.ID]; ok {
		staged = linea.Cantidad
	}
	// Sale carts cannot stage more than the current stock. Commit re-checks
	// anyway, but rejecting here keeps the operator from building an
	// uncommittable ticket.
	if tipo == CarritoVenta && staged+1 > p.StockActual {
		return nil, fmt.Errorf("stock insuficiente para %s (disponible %d)", p.Nombre, p.StockActual)
	}

	if linea, ok := c.lineas[p.ID]; ok {
		linea.Cantidad++
	} else {
		c.orden = append(c.orden, p.ID)
		c.lineas[p.ID] = &lineaCarrito{
			ProductoID:   p.ID,
			CodigoBarras: p.CodigoBarras,
			Nombre:       p.Nombre,
			PrecioU:      p.PrecioVenta,
			Cantidad:     1,
		}
	}
	return carritoToResponse(tipo, c), nil
}

// Quitar removes the whole line, not a single unit. The route is gated by the
// admin middleware; the service itself carries no UI concern.
func (s *carritoService) Quitar(_ context.Context, tipo string, productoID uuid.UUID) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carritoDe(tipo)
	if err != nil {
		return nil, err
	}
	if _, ok := c.lineas[productoID]; !ok {
		return nil, errors.New("el producto no esta en el carrito")
	}
	delete(c.lineas, productoID)
	for i, id := range c.orden {
		if id == productoID {
			c.orden = append(c.orden[:i], c.orden[i+1:]...)
			break
		}
	}
	return carritoToResponse(tipo, c), nil
}

func (s *carritoService) Ver(_ context.Context, tipo string) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carritoDe(tipo)
	if err != nil {
		return nil, err
	}
	return carritoToResponse(tipo, c), nil
}

func (s *carritoService) Vaciar(_ context.Context, tipo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carritoDe(tipo)
	if err != nil {
		return err
	}
	c.orden = nil
	c.lineas = make(map[uuid.UUID]*lineaCarrito)
	return nil
}

func (s *carritoService) lineasDe(tipo string) ([]lineaCarrito, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carritoDe(tipo)
	if err != nil {
		return nil, err
	}
	lineas := make([]lineaCarrito, 0, len(c.orden))
	for _, id := range c.orden {
		lineas = append(lineas, *c.lineas[id])
	}
	return lineas, nil
}

func carritoToResponse(tipo string, c *carrito) *dto.CarritoResponse {
	resp := &dto.CarritoResponse{Tipo: tipo, Total: decimal.Zero, Lineas: []dto.LineaCarritoResponse{}}
	for _, id := range c.orden {
		l := c.lineas[id]
		subtotal := l.PrecioU.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		resp.Lineas = append(resp.Lineas, dto.LineaCarritoResponse{
			ProductoID:   l.ProductoID.String(),
			CodigoBarras: l.CodigoBarras,
			Nombre:       l.Nombre,
			PrecioU:      l.PrecioU,
			Cantidad:     l.Cantidad,
			Subtotal:     subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp
}

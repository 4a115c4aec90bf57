package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

// Agregar godoc
// @Summary      Agregar línea al carrito
// @Description  Escanea un producto al carrito indicado. En el carrito de venta rechaza cuando lo apilado superaría el stock actual.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tipo path string true "venta | devolucion"
// @Param        body body dto.AgregarLineaRequest true "Código de barras"
// @Success      200  {object} dto.CarritoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/carrito/{tipo}/lineas [post]
func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarLineaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), c.Param("tipo"), req.CodigoBarras)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Quitar removes the whole line for a product. Admin-gated at the route.
func (h *CarritoHandler) Quitar(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Quitar(c.Request.Context(), c.Param("tipo"), productoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Ver(c *gin.Context) {
	resp, err := h.svc.Ver(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	if err := h.svc.Vaciar(c.Request.Context(), c.Param("tipo")); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Commit godoc
// @Summary      Cerrar la venta del carrito
// @Description  Descuenta stock y registra la entrada Completada en una sola transacción; stock insuficiente en cualquier línea revierte todo y el carrito queda intacto.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CommitVentaRequest true "Método de pago"
// @Success      201  {object} dto.VentaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Commit(c *gin.Context) {
	var req dto.CommitVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CommitVenta(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrStockInsuficiente) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Devolucion credits stock back (no ceiling) and records the return entry.
func (h *VentasHandler) Devolucion(c *gin.Context) {
	var req dto.CommitVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CommitDevolucion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cancelar records the abandoned ticket for audit; inventory is untouched.
func (h *VentasHandler) Cancelar(c *gin.Context) {
	var req dto.CommitVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CommitCancelada(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CierreForzado is invoked by the host shell when closing with a non-empty
// cart and the operator confirms abandoning it.
func (h *VentasHandler) CierreForzado(c *gin.Context) {
	var req dto.CommitVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CommitCierreForzado(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar entradas del libro
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        desde  query string false "Fecha YYYY-MM-DD"
// @Param        hasta  query string false "Fecha YYYY-MM-DD"
// @Param        estado query string false "Completada | Cancelada | Devolucion | all"
// @Success      200    {object} dto.VentaListResponse
// @Router       /v1/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListVentas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"
	"time"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type TasasHandler struct{ svc service.TasaService }

func NewTasasHandler(svc service.TasaService) *TasasHandler { return &TasasHandler{svc: svc} }

// Latest returns the current rate, or a zero sentinel with disponible=false.
func (h *TasasHandler) Latest(c *gin.Context) {
	resp, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la tasa"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AsOf returns the rate in force at the given timestamp (RFC 3339 or date).
func (h *TasasHandler) AsOf(c *gin.Context) {
	raw := c.Query("en")
	ts, err := time.ParseInLocation(time.RFC3339, raw, time.Local)
	if err != nil {
		if ts, err = time.ParseInLocation("2006-01-02", raw, time.Local); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro 'en' invalido"))
			return
		}
	}
	resp, err := h.svc.AsOf(c.Request.Context(), ts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la tasa"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarManual writes an operator-typed rate. Admin-gated at the route.
func (h *TasasHandler) RegistrarManual(c *gin.Context) {
	var req dto.RegistrarTasaManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarManual(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarDesdeWeb forces an immediate fetch outside the hourly cycle.
func (h *TasasHandler) ActualizarDesdeWeb(c *gin.Context) {
	resp, err := h.svc.ActualizarDesdeWeb(c.Request.Context(), model.FuenteWebManual)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("No se pudo obtener la tasa del BCV"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

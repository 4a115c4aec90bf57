package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen godoc
// @Summary      Resumen del período
// @Description  Agrega el libro por rubros. Mejor esfuerzo: un rubro que falla aporta cero en lugar de abortar el resumen.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string true "Fecha YYYY-MM-DD"
// @Param        hasta query string true "Fecha YYYY-MM-DD"
// @Success      200   {object} dto.ResumenReporteResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros desde/hasta requeridos"))
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarPDF writes the paginated report document and returns its path.
func (h *ReportesHandler) ExportarPDF(c *gin.Context) {
	var req dto.ExportarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ExportarPDF(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

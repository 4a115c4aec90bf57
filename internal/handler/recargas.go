package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type RecargasHandler struct{ svc service.RecargaService }

func NewRecargasHandler(svc service.RecargaService) *RecargasHandler {
	return &RecargasHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar recarga telefónica
// @Description  Comisión fija del 15 % sobre el monto base; el número debe ser prefijo de operadora + 7 dígitos.
// @Tags         recargas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarRecargaRequest true "Datos de la recarga"
// @Success      201  {object} dto.RecargaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recargas [post]
func (h *RecargasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRecargaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

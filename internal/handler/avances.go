package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type AvancesHandler struct{ svc service.AvanceService }

func NewAvancesHandler(svc service.AvanceService) *AvancesHandler {
	return &AvancesHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar avance de efectivo
// @Description  Comisión fija del 20 % sobre el monto entregado; los cancelados también quedan en el libro.
// @Tags         avances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarAvanceRequest true "Datos del avance"
// @Success      201  {object} dto.AvanceResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/avances [post]
func (h *AvancesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarAvanceRequest
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

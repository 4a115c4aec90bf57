package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

// ConsultaPreciosHandler serves the read-only price check at the counter:
// name, sale price, stock and the Bs equivalent at the latest rate.
type ConsultaPreciosHandler struct{ svc service.InventarioService }

func NewConsultaPreciosHandler(svc service.InventarioService) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{svc: svc}
}

func (h *ConsultaPreciosHandler) GetPrecioPorBarcode(c *gin.Context) {
	resp, err := h.svc.ConsultarPrecio(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Iniciar sesion
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciales"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesbloquearAdmin godoc
// @Summary      Desbloquear acciones de administrador
// @Description  Verifica la contraseña de administrador y emite un token elevado de corta duración.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.DesbloquearAdminRequest true "Contraseña de administrador"
// @Success      200  {object} dto.DesbloquearAdminResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/desbloquear [post]
func (h *AuthHandler) DesbloquearAdmin(c *gin.Context) {
	var req dto.DesbloquearAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DesbloquearAdmin(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

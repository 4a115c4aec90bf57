package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

// DesbloquearAdminRequest carries the admin password typed by the operator to
// unlock a gated action; a short-lived elevated token is returned.
type DesbloquearAdminRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"required,oneof=cajero administrador"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}

type DesbloquearAdminResponse struct {
	AdminToken string `json:"admin_token"`
	ExpiresIn  int    `json:"expires_in"`
}

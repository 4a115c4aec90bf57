package service

import (
	"context"
	"errors"
	"time"

	"github.com/Sijj2003/app-tienda/internal/config"
	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// DesbloquearAdmin verifies the administrador password and issues a
	// short-lived elevated token. Wrong password → error, retry inline; the
	// elevation expires on its own, mirroring the admin flag reset when the
	// operator leaves the gated area.
	DesbloquearAdmin(ctx context.Context, req dto.DesbloquearAdminRequest) (*dto.DesbloquearAdminResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	token, err := s.generateToken(user, user.Rol, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Nombre:   user.Nombre,
			Rol:      user.Rol,
			Activo:   user.Activo,
		},
	}, nil
}

func (s *authService) DesbloquearAdmin(ctx context.Context, req dto.DesbloquearAdminRequest) (*dto.DesbloquearAdminResponse, error) {
	admin, err := s.repo.FindAdmin(ctx)
	if err != nil {
		return nil, errors.New("no hay cuenta de administrador configurada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("contraseña de administrador incorrecta")
	}

	ttl := time.Duration(s.cfg.AdminUnlockMinutes) * time.Minute
	token, err := s.generateToken(admin, "administrador", ttl)
	if err != nil {
		return nil, err
	}
	return &dto.DesbloquearAdminResponse{
		AdminToken: token,
		ExpiresIn:  s.cfg.AdminUnlockMinutes * 60,
	}, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:     req.Username,
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Nombre:   user.Nombre,
		Rol:      user.Rol,
		Activo:   user.Activo,
	}, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = dto.UsuarioResponse{
			ID:       u.ID.String(),
			Username: u.Username,
			Nombre:   u.Nombre,
			Rol:      u.Rol,
			Activo:   u.Activo,
		}
	}
	return resp, nil
}

func (s *authService) generateToken(user *model.Usuario, rol string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"rol":      rol,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/config"
	"github.com/irds/vans-api/internal/pkg/hash"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/pkg/session"
	"github.com/irds/vans-api/internal/repository"
)

// LoginRequest - petición de acceso con la contraseña compartida
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse - respuesta de acceso
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// SessionManager - emisión y verificación de tokens de sesión
type SessionManager interface {
	Issue(ctx context.Context) (string, *session.Claims, error)
	Verify(ctx context.Context, token string) (*session.Claims, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// Service contiene la lógica de la sesión por contraseña compartida
type Service struct {
	cfg      config.AuthConfig
	sessions SessionManager
	userRepo repository.UserRepository
	logger   logger.Logger
}

// NewService crea el servicio de autenticación
func NewService(
	cfg config.AuthConfig,
	sessions SessionManager,
	userRepo repository.UserRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login comprueba la contraseña y emite un token de sesión
// Con contraseña incorrecta no se emite nada
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if !s.passwordMatches(req.Password) {
		s.logger.Warn("Login failed: wrong password")
		return nil, domain.ErrWrongPassword
	}

	token, claims, err := s.sessions.Issue(ctx)
	if err != nil {
		s.logger.Error("Failed to issue session", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	// Sellamos el último acceso de la cuenta asociada, si existe
	// La tabla users es el camino de cuentas completas que se conserva
	if user, err := s.userRepo.GetByEmail(ctx, s.cfg.PrincipalEmail); err == nil {
		if err := s.userRepo.UpdateLastSignedIn(ctx, user.ID); err != nil {
			s.logger.Warn("Failed to stamp last sign-in", map[string]interface{}{
				"error": err.Error(),
			})
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("Failed to load principal account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Info("Login successful", map[string]interface{}{
		"session_id": claims.ID,
	})

	return &LoginResponse{
		Success: true,
		Message: "Login exitoso",
		Token:   token,
	}, nil
}

// Verify valida un token de sesión
func (s *Service) Verify(ctx context.Context, token string) (*session.Claims, error) {
	return s.sessions.Verify(ctx, token)
}

// Principal devuelve la identidad de la sesión actual
// Si la cuenta configurada existe en la tabla users se devuelve esa;
// si no, una identidad sintética de gestor de flota
func (s *Service) Principal(ctx context.Context, claims *session.Claims) *domain.Principal {
	principal := &domain.Principal{
		Email:         s.cfg.PrincipalEmail,
		Name:          "Fleet Manager",
		Role:          domain.RoleAdmin,
		Authenticated: true,
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}

	user, err := s.userRepo.GetByEmail(ctx, s.cfg.PrincipalEmail)
	if err == nil {
		principal.Email = user.Email
		principal.Name = user.Name
		principal.Role = user.Role
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("Failed to load principal account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return principal
}

// Logout revoca la sesión en el servidor
// Un token ya inválido no es un error: no queda nada que revocar
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.logger.Info("Session revoked")
	return nil
}

// SessionTTL devuelve la vida configurada de la sesión (para la cookie)
func (s *Service) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// passwordMatches compara la contraseña con el secreto configurado
// Si hay hash bcrypt configurado tiene prioridad sobre la forma en claro
func (s *Service) passwordMatches(password string) bool {
	if s.cfg.AppPasswordHash != "" {
		return hash.CheckPassword(s.cfg.AppPasswordHash, password)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AppPassword)) == 1
}

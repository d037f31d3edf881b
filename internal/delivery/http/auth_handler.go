package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/irds/vans-api/internal/delivery/http/middleware"
	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/config"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/pkg/session"
	"github.com/irds/vans-api/internal/usecase/auth"
)

// AuthService define la interfaz del servicio de autenticación
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	Verify(ctx context.Context, token string) (*session.Claims, error)
	Principal(ctx context.Context, claims *session.Claims) *domain.Principal
	Logout(ctx context.Context, token string) error
	SessionTTL() time.Duration
}

// AuthHandler atiende login, me y logout
type AuthHandler struct {
	authService AuthService
	cfg         config.AuthConfig
	logger      logger.Logger
}

// NewAuthHandler crea el handler de autenticación
func NewAuthHandler(authService AuthService, cfg config.AuthConfig, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Login valida la contraseña compartida y fija la cookie de sesión
// Con contraseña incorrecta no se emite ninguna cookie
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password == "" {
		respondError(w, http.StatusUnprocessableEntity, "Password is required")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			respondError(w, http.StatusUnauthorized, "Contraseña incorrecta")
			return
		}
		h.logger.Error("Login failed", map[string]interface{}{
			"error": err.Error(),
		})
		respondDomainError(w, err, "Login failed")
		return
	}

	h.setSessionCookie(w, resp.Token)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": resp.Message,
		"token":   resp.Token,
	})
}

// Me devuelve la identidad de la sesión actual, o null sin sesión válida
// Es público a propósito: el cliente lo usa para saber si está dentro
// GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.ExtractToken(r, h.cfg.CookieName)
	if !ok {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    nil,
		})
		return
	}

	claims, err := h.authService.Verify(r.Context(), token)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    nil,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.authService.Principal(r.Context(), claims),
	})
}

// Logout revoca la sesión en el servidor y borra la cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.ExtractToken(r, h.cfg.CookieName); ok {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			h.logger.Error("Logout failed", map[string]interface{}{
				"error": err.Error(),
			})
			respondDomainError(w, err, "Logout failed")
			return
		}
	}

	h.clearSessionCookie(w)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/session"
)

// contextKey - tipo para las claves de contexto
type contextKey string

const (
	// SessionClaimsKey - clave de las claims de sesión en el contexto
	SessionClaimsKey contextKey = "session_claims"
)

// SessionVerifier valida un token de sesión contra el registro del servidor
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*session.Claims, error)
}

// ExtractToken saca el token de la cookie de sesión o, en su defecto,
// de la cabecera Authorization ("Bearer <token>")
func ExtractToken(r *http.Request, cookieName string) (string, bool) {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware exige una sesión válida
// El token se verifica en el servidor en cada petición: la firma, la
// caducidad y que la sesión siga en el registro
func AuthMiddleware(verifier SessionVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ExtractToken(r, cookieName)
			if !ok {
				respondError(w, http.StatusUnauthorized, "Session required")
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					respondError(w, http.StatusUnauthorized, "Session expired")
					return
				}
				respondError(w, http.StatusUnauthorized, "Invalid session")
				return
			}

			ctx := context.WithValue(r.Context(), SessionClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionClaims extrae las claims de sesión del contexto
func GetSessionClaims(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(SessionClaimsKey).(*session.Claims)
	return claims, ok
}

// respondError envía una respuesta JSON de error
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}

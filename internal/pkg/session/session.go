package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/irds/vans-api/internal/domain"
)

// Claims - contenido del token de sesión
// No lleva identidad de usuario: solo la marca de sesión válida y su emisión
type Claims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

// Store - registro de sesiones vivas en el servidor
// El token es una capacidad: si su id no está en el registro, la sesión no vale
type Store interface {
	// Put registra una sesión con su TTL
	Put(ctx context.Context, sessionID string, ttl time.Duration) error

	// Exists comprueba si la sesión sigue registrada
	Exists(ctx context.Context, sessionID string) (bool, error)

	// Revoke elimina la sesión del registro
	Revoke(ctx context.Context, sessionID string) error
}

// Service emite y verifica tokens de sesión opacos
type Service struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

// NewService crea el servicio de sesiones
func NewService(secret string, ttl time.Duration, store Store) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// TTL devuelve la vida configurada de la sesión
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue emite un token nuevo y lo registra en el almacén de sesiones
func (s *Service) Issue(ctx context.Context) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "vans-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.store.Put(ctx, claims.ID, s.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to register session: %w", err)
	}

	return tokenString, claims, nil
}

// Verify valida la firma y la caducidad del token y comprueba que la
// sesión sigue registrada (el logout la revoca en el servidor)
func (s *Service) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if !claims.Authenticated || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}

	alive, err := s.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session registry: %w", err)
	}
	if !alive {
		return nil, domain.ErrSessionRevoked
	}

	return claims, nil
}

// Revoke elimina la sesión asociada a un token
// Acepta tokens caducados: un logout tardío también debe limpiar el registro
func (s *Service) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil && !errors.Is(err, domain.ErrTokenExpired) {
		return err
	}
	if claims == nil || claims.ID == "" {
		return domain.ErrInvalidToken
	}
	return s.store.Revoke(ctx, claims.ID)
}

// parse valida la firma y devuelve las claims
func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			if token != nil {
				if claims, ok := token.Claims.(*Claims); ok {
					return claims, domain.ErrTokenExpired
				}
			}
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

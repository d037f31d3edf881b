package session

import (
	"context"
	"errors"
	"time"

	"github.com/irds/vans-api/internal/pkg/redis"
)

const sessionKeyPrefix = "session:"

// RedisStore - registro de sesiones sobre Redis
// El TTL de la clave expira la sesión aunque nadie haga logout
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore crea el registro de sesiones
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, "1", ttl)
}

func (s *RedisStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	if _, err := s.client.Get(ctx, sessionKeyPrefix+sessionID); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Revoke(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID)
}

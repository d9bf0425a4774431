package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "classroom-market/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore issues opaque teacher session tokens.
type SessionStore interface {
	Create(ctx context.Context, ttl time.Duration) (string, error)
	// Validate returns apperrors.ErrUnauthorized for unknown or expired tokens.
	Validate(ctx context.Context, token string) error
	Delete(ctx context.Context, token string) error
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) getSessionKey(token string) string {
	return fmt.Sprintf("teacher:session:%s", token)
}

func (s *RedisSessionStore) Create(ctx context.Context, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, s.getSessionKey(token), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Validate(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrUnauthorized
	}
	err := s.client.Get(ctx, s.getSessionKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrUnauthorized
	}
	return err
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}

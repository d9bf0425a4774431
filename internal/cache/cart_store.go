package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CartStore persists a student's cart as itemID -> units.
type CartStore interface {
	Load(ctx context.Context, studentID int) (map[int]int, error)
	// Save replaces the whole cart; an empty map deletes it.
	Save(ctx context.Context, studentID int, lines map[int]int) error
	Clear(ctx context.Context, studentID int) error
}

type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisCartStore) getCartKey(studentID int) string {
	return fmt.Sprintf("cart:%d", studentID)
}

func (s *RedisCartStore) Load(ctx context.Context, studentID int) (map[int]int, error) {
	raw, err := s.client.HGetAll(ctx, s.getCartKey(studentID)).Result()
	if err != nil {
		return nil, err
	}

	lines := make(map[int]int, len(raw))
	for field, value := range raw {
		itemID, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid cart item id %q: %w", field, err)
		}
		units, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid cart units for item %d: %w", itemID, err)
		}
		if units > 0 {
			lines[itemID] = units
		}
	}
	return lines, nil
}

func (s *RedisCartStore) Save(ctx context.Context, studentID int, lines map[int]int) error {
	key := s.getCartKey(studentID)

	values := make(map[string]interface{}, len(lines))
	for itemID, units := range lines {
		if units > 0 {
			values[strconv.Itoa(itemID)] = units
		}
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) == 0 {
			return nil
		}
		pipe.HSet(ctx, key, values)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

func (s *RedisCartStore) Clear(ctx context.Context, studentID int) error {
	return s.client.Del(ctx, s.getCartKey(studentID)).Err()
}

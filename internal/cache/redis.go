package cache

import (
	"context"
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
)

// RedisStore implements Store over a redigo connection pool.
type RedisStore struct {
	pool *redis.Pool
}

// NewRedisStore creates a store with a small idle pool against the given address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		pool: &redis.Pool{
			MaxIdle:     3,
			IdleTimeout: 240 * time.Second,
			Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", addr) },
		},
	}
}

// Get fetches the value and remaining TTL in one round trip pair.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, time.Duration, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	value, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, 0, ErrMiss
		}
		return nil, 0, err
	}

	ttlMillis, err := redis.Int64(conn.Do("PTTL", key))
	if err != nil {
		return nil, 0, err
	}
	if ttlMillis < 0 {
		// Key vanished or has no expiry between the two commands.
		return nil, 0, ErrMiss
	}
	return value, time.Duration(ttlMillis) * time.Millisecond, nil
}

// Set stores the value with expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Do("SET", key, value, "PX", ttl.Milliseconds())
	return err
}

// Close releases pool resources.
func (s *RedisStore) Close() error {
	return s.pool.Close()
}

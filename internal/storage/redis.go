package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const redisPrefix = "arcade:"

// RedisKV stores keys in Redis under the "arcade:" prefix.
type RedisKV struct {
	client *redis.Client
}

// RedisOptions selects the Redis server.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// OpenRedis connects and pings the server. Callers fall back to another
// store when it returns an error.
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisKV, error) {
	if opts.Addr == "" {
		return nil, errors.New("storage: redis address is empty")
	}
	client := redis.NewClient(&redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: redis ping %s: %w", opts.Addr, err)
	}
	return &RedisKV{client: client}, nil
}

// Get returns the value for key, or ErrNotFound.
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, redisPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: redis get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value under key with no expiry.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set %q: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisKV) Close() error {
	return r.client.Close()
}

// Package rds provides a small redis client used for response caching
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr string
	DB   int
}

// RDS wraps a go-redis client behind the cache surface the services need
type RDS struct {
	client *redis.Client
}

// Open connects to redis and verifies the connection with a ping
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RDS{client: client}, nil
}

// Get returns the cached value and whether the key existed
func (r *RDS) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores a value with a TTL
func (r *RDS) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return r.client.Set(ctx, key, val, ttl).Err()
}

// Ping verifies connectivity
func (r *RDS) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// Close closes the client
func (r *RDS) Close() error { return r.client.Close() }

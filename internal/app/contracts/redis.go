package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// SetHash writes every field in one round trip and applies the expiry.
	SetHash(ctx context.Context, key string, fields map[string]string, exp time.Duration) error
	GetHash(ctx context.Context, key string) (map[string]string, error)
}

package redis

import (
	"context"
	"time"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

// SetHash issues a single HSET carrying every field, then the expiry. The
// write is one command so concurrent readers see all fields or none.
func (r *redisRepository) SetHash(ctx context.Context, key string, fields map[string]string, exp time.Duration) error {
	values := make([]interface{}, 0, len(fields)*2)
	for field, value := range fields {
		values = append(values, field, value)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	if exp > 0 {
		pipe.Expire(ctx, key, exp)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) GetHash(ctx context.Context, key string) (map[string]string, error) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return fields, nil
}

package redis

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/exceptions"
	"time"

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

// Get returns an empty string when key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return incr.Val(), nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

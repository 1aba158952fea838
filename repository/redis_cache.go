package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL limita la vida de los resultados cacheados; los cálculos son
// puros, el TTL solo evita que el cache crezca sin límite.
const cacheTTL = 24 * time.Hour

const cacheTimeout = 500 * time.Millisecond

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	return r.client.Set(ctx, key, value, cacheTTL).Err()
}

package server

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered view responses in redis, keyed by the canonical
// query. The catalogue is immutable for the process lifetime so entries
// only need a TTL to bound memory, not invalidation.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: rdb, ttl: 10 * time.Minute}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared redis instance, for deployments
// where several api replicas should share introspection results.
type Redis struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedis(client *redis.Client, keyPrefix string, ttl time.Duration) *Redis {
	return &Redis{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	data, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		// Treat unreachable redis the same as a miss.
		return nil, false
	}

	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if key == "" {
		return
	}

	_ = r.client.Set(ctx, r.keyPrefix+key, value, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}

	_ = r.client.Del(ctx, r.keyPrefix+key).Err()
}

package replay

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const nonceKeyPrefix = "vg:nonce:"

// RedisNonceStore implements NonceStore on top of redis using SET NX with
// a TTL, so a nonce can be consumed exactly once per window across all
// app-party instances sharing the redis.
type RedisNonceStore struct {
	client *redis.Client
	prefix string
}

func NewRedisNonceStore(client *redis.Client) *RedisNonceStore {
	return &RedisNonceStore{client: client, prefix: nonceKeyPrefix}
}

func (s *RedisNonceStore) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.SetNX(ctx, s.prefix+nonce, 1, ttl).Result()
}

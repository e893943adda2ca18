package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionCache maps opaque session tokens to account ids. Expiry is enforced
// by the backing store.
type SessionCache interface {
	// Set stores token -> accountID for ttl, overwriting any previous value.
	Set(ctx context.Context, token string, accountID int64, ttl time.Duration) error
	// Get returns the account id for token. ok is false when the token was
	// never set or has expired.
	Get(ctx context.Context, token string) (accountID int64, ok bool, err error)
	// Delete removes the token and reports whether it existed.
	Delete(ctx context.Context, token string) (bool, error)
}

// RedisSessionCache stores sessions as plain string keys with a TTL.
// Key format: session:<token>
type RedisSessionCache struct {
	client redis.Cmdable
}

// NewRedisSessionCache wraps a go-redis client.
func NewRedisSessionCache(client redis.Cmdable) *RedisSessionCache {
	return &RedisSessionCache{client: client}
}

func (c *RedisSessionCache) Set(ctx context.Context, token string, accountID int64, ttl time.Duration) error {
	if err := c.client.Set(ctx, sessionKey(token), strconv.FormatInt(accountID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Get(ctx context.Context, token string) (int64, bool, error) {
	val, err := c.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load session: %w", err)
	}
	accountID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("decode session value: %w", err)
	}
	return accountID, true, nil
}

func (c *RedisSessionCache) Delete(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return n > 0, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

package utils

import (
	"context" // Context for Redis operations
	"time"    // Lock TTL

	"github.com/google/uuid"       // Lock tokens
	"github.com/redis/go-redis/v9" // Redis client
)

// Locker takes short lived named locks. Release only frees the lock when token
// still owns it, so an expired holder cannot free a later holder's lock.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

// releaseScript deletes KEYS[1] only while it holds ARGV[1]
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker with SETNX and a compare-and-delete script
type RedisLocker struct {
	rdb *redis.Client
}

// NewRedisLocker creates a Locker backed by rdb
func NewRedisLocker(rdb *redis.Client) *RedisLocker {
	return &RedisLocker{rdb: rdb}
}

// Acquire sets key to a fresh token if it does not exist yet
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, "lock:"+key, token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Release deletes key if it still holds token
func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, l.rdb, []string{"lock:" + key}, token).Err()
}

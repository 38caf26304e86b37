package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	usecaseErrors "github.com/johnquangdev/discussion-planner/internal/usecase/errors"
)

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a distributed lock built on SET NX PX
type RedisLocker struct {
	client redis.Cmdable
	prefix string
}

// NewRedisLocker creates a Redis backed locker
func NewRedisLocker(client redis.Cmdable, prefix string) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix}
}

// Acquire takes the lock for ttl and returns the owner token
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return "", usecaseErrors.ErrLockNotAcquired
	}
	return token, nil
}

// Release frees the lock when token still owns it
func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	if deleted == 0 {
		return usecaseErrors.ErrLockNotHeld
	}
	return nil
}

// MemoryLocker is the single-process locker used without Redis
type MemoryLocker struct {
	store  *MemoryStore
	prefix string
}

// NewMemoryLocker creates a locker on top of an in-memory store
func NewMemoryLocker(store *MemoryStore, prefix string) *MemoryLocker {
	return &MemoryLocker{store: store, prefix: prefix}
}

// Acquire takes the lock for ttl and returns the owner token
func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	token := uuid.NewString()
	if !l.store.SetNX(l.prefix+key, token, ttl) {
		return "", usecaseErrors.ErrLockNotAcquired
	}
	return token, nil
}

// Release frees the lock when token still owns it
func (l *MemoryLocker) Release(_ context.Context, key, token string) error {
	if !l.store.CompareAndDelete(l.prefix+key, token) {
		return usecaseErrors.ErrLockNotHeld
	}
	return nil
}

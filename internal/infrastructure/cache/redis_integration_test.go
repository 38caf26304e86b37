//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	usecaseErrors "github.com/johnquangdev/discussion-planner/internal/usecase/errors"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.Run(ctx, "redis:7-alpine",
		testcontainers.WithExposedPorts("6379/tcp"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort("6379/tcp"),
			).WithDeadline(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	addr, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	client := setupRedis(t)
	locker := NewRedisLocker(client, "planner:")

	token, err := locker.Acquire(ctx, "event-1", time.Minute)
	require.NoError(t, err)

	stored, err := client.Get(ctx, "planner:event-1").Result()
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	ttl, err := client.PTTL(ctx, "planner:event-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = locker.Acquire(ctx, "event-1", time.Minute)
	assert.ErrorIs(t, err, usecaseErrors.ErrLockNotAcquired)

	assert.ErrorIs(t, locker.Release(ctx, "event-1", "someone-else"), usecaseErrors.ErrLockNotHeld)
	require.NoError(t, locker.Release(ctx, "event-1", token))
	assert.ErrorIs(t, locker.Release(ctx, "event-1", token), usecaseErrors.ErrLockNotHeld)

	again, err := locker.Acquire(ctx, "event-1", time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
}

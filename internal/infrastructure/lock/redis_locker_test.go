package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"equine_billing/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client), mr
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	l, mr := newTestLocker(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "settlement:inv1:m1", time.Minute)
	require.NoError(t, err)
	require.True(t, mr.Exists("lock:settlement:inv1:m1"))
	require.Equal(t, time.Minute, mr.TTL("lock:settlement:inv1:m1"))

	_, err = l.Acquire(ctx, "settlement:inv1:m1", time.Minute)
	require.ErrorIs(t, err, interfaces.ErrLockNotAcquired)

	_, err = l.Acquire(ctx, "settlement:inv1:m2", time.Minute)
	require.NoError(t, err)

	release(ctx)
	require.False(t, mr.Exists("lock:settlement:inv1:m1"))

	release2, err := l.Acquire(ctx, "settlement:inv1:m1", time.Minute)
	require.NoError(t, err)
	release2(ctx)
}

func TestRedisLocker_ReleaseKeepsForeignLock(t *testing.T) {
	l, mr := newTestLocker(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "settlement:inv1:m1", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists("lock:settlement:inv1:m1"))

	_, err = l.Acquire(ctx, "settlement:inv1:m1", time.Minute)
	require.NoError(t, err)
	held, err := mr.Get("lock:settlement:inv1:m1")
	require.NoError(t, err)

	release(ctx)
	still, err := mr.Get("lock:settlement:inv1:m1")
	require.NoError(t, err)
	require.Equal(t, held, still)
}

// Runs against a real server when REDIS_ADDR is set.
func TestRedisLocker_Server(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
	defer client.Close()
	l := NewRedisLocker(client)
	ctx := context.Background()
	key := "settlement:test:" + uuid.NewString()

	release, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, key, time.Minute)
	require.ErrorIs(t, err, interfaces.ErrLockNotAcquired)

	release(ctx)
	release2, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	release2(ctx)
}

package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisLocker(rdb), mr
}

func TestRedisLocker_ExclusiveUntilReleased(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLocker(t)

	release, ok, err := l.TryLock(ctx, "update_overdue_invoices", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryLock(ctx, "update_overdue_invoices", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be rejected")

	_, ok, err = l.TryLock(ctx, "check_payment_reminders", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "other keys are independent")

	require.NoError(t, release(ctx))
	_, ok, err = l.TryLock(ctx, "update_overdue_invoices", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLocker(t)

	_, ok, err := l.TryLock(ctx, "job", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok, err = l.TryLock(ctx, "job", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLocker(t)

	staleRelease, ok, err := l.TryLock(ctx, "job", time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	mr.FastForward(2 * time.Second)

	_, ok, err = l.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, staleRelease(ctx))
	assert.True(t, mr.Exists(keyPrefix+"job"), "release must only delete its own token")
}

func TestRedisLocker_Validation(t *testing.T) {
	l, _ := newTestLocker(t)
	_, _, err := l.TryLock(context.Background(), "", time.Second)
	assert.Error(t, err)
	_, _, err = l.TryLock(context.Background(), "job", 0)
	assert.Error(t, err)
}

func TestNoopLocker(t *testing.T) {
	release, ok, err := NoopLocker{}.TryLock(context.Background(), "job", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, release(context.Background()))
}

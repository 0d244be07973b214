package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitCancelled(t *testing.T, ctx context.Context) {
	t.Helper()
	select {
	case <-ctx.Done():
	case <-time.After(100 * time.Millisecond):
		t.Error("lock context was not cancelled after unlock")
	}
}

func TestAutoRenewMutex_LockUnlock(t *testing.T) {
	mr, client := setupMiniredis(t)

	mutex := NewAutoRenewMutex(client, "test-lock")
	assert.False(t, mutex.Valid())

	lockCtx, err := mutex.Lock(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists("test-lock"))
	assert.True(t, mutex.Valid())

	ok, err := mutex.Unlock()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists("test-lock"))
	assert.False(t, mutex.Valid())
	waitCancelled(t, lockCtx)
}

func TestAutoRenewMutex_Contention(t *testing.T) {
	_, client := setupMiniredis(t)

	holder := NewAutoRenewMutex(client, "test-lock")
	waiter := NewAutoRenewMutex(client, "test-lock", WithAutoRenewMutexRetryDelay(20*time.Millisecond))

	_, err := holder.Lock(context.Background())
	require.NoError(t, err)

	// 鎖被持有時，等待者會一直重試到逾時
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	lockCtx, err := waiter.Lock(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, lockCtx)

	// 釋放後等待者可以取得鎖
	released := make(chan struct{})
	go func() {
		defer close(released)
		time.Sleep(50 * time.Millisecond)
		_, err := holder.Unlock()
		assert.NoError(t, err)
	}()

	lockCtx, err = waiter.Lock(context.Background())
	require.NoError(t, err)
	<-released
	ok, err := waiter.Unlock()
	assert.NoError(t, err)
	assert.True(t, ok)
	waitCancelled(t, lockCtx)
}

func TestAutoRenewMutex_AutoRenew(t *testing.T) {
	_, client := setupMiniredis(t)

	mutex := NewAutoRenewMutex(client, "test-lock",
		WithAutoRenewMutexExpiry(300*time.Millisecond),
		WithAutoRenewMutexRenewInterval(50*time.Millisecond))

	_, err := mutex.Lock(context.Background())
	require.NoError(t, err)

	// 超過原本的過期時間後仍然有效
	time.Sleep(450 * time.Millisecond)
	assert.True(t, mutex.Valid())

	ok, err := mutex.Unlock()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAutoRenewMutex_Errors(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, _, cleanup := setupTest(t)
		defer cleanup()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mutex := NewAutoRenewMutex(client, "test-lock")
		lockCtx, err := mutex.Lock(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, lockCtx)
	})

	t.Run("redis error", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("test-lock", ".*", 8*time.Second).SetErr(redis.ErrClosed)

		mutex := NewAutoRenewMutex(client, "test-lock")
		lockCtx, err := mutex.Lock(context.Background())
		assert.ErrorIs(t, err, redis.ErrClosed)
		assert.Nil(t, lockCtx)
	})

	t.Run("redis error skipped until deadline", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("test-lock", ".*", 8*time.Second).SetErr(redis.ErrClosed)

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		mutex := NewAutoRenewMutex(client, "test-lock",
			WithAutoRenewMutexSkipLockError(true),
			WithAutoRenewMutexRetryDelay(time.Second))
		lockCtx, err := mutex.Lock(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, lockCtx)
	})
}

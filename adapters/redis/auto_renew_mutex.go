package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"folio/counter"
)

// AutoRenewMutex 是以 redsync 實作的分散式互斥鎖，持有期間會在背景自動續期。
// 計數器在多個節點之間共用時，以它確保同一時間只有一個節點在做讀取-修改-寫入。
type AutoRenewMutex struct {
	*redsync.Mutex
	cancel   context.CancelFunc
	renewing bool
	mu       sync.Mutex
	wg       sync.WaitGroup
	logger   *slog.Logger
	options  autoRenewMutexOptions
}

type autoRenewMutexOptions struct {
	renewInterval time.Duration
	retryDelay    time.Duration
	expiry        time.Duration
	skipLockError bool
	logger        *slog.Logger
}

type AutoRenewMutexOption func(*autoRenewMutexOptions)

// WithAutoRenewMutexRenewInterval 設置自動續期間隔
func WithAutoRenewMutexRenewInterval(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.renewInterval = d
	}
}

// WithAutoRenewMutexRetryDelay 設置重試延遲
func WithAutoRenewMutexRetryDelay(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.retryDelay = d
	}
}

// WithAutoRenewMutexExpiry 設置鎖過期時間
func WithAutoRenewMutexExpiry(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.expiry = d
	}
}

// WithAutoRenewMutexSkipLockError 設置是否忽略 redis 通訊錯誤並持續重試
func WithAutoRenewMutexSkipLockError(skip bool) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.skipLockError = skip
	}
}

// WithAutoRenewMutexLogger 設置日誌記錄器
func WithAutoRenewMutexLogger(logger *slog.Logger) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.logger = logger
	}
}

// NewAutoRenewMutex 創建一個帶自動續期功能的互斥鎖
func NewAutoRenewMutex(client *redis.Client, key string, opts ...AutoRenewMutexOption) IAutoRenewMutex {
	options := autoRenewMutexOptions{
		expiry:     8 * time.Second,
		retryDelay: 50 * time.Millisecond,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	// 未設置續期間隔時使用過期時間的 1/3
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}

	rs := redsync.New(goredis.NewPool(client))
	mutex := rs.NewMutex(
		key,
		redsync.WithExpiry(options.expiry),
		redsync.WithTries(1),
		redsync.WithRetryDelay(options.retryDelay),
	)

	return &AutoRenewMutex{
		Mutex:   mutex,
		logger:  options.logger.With(slog.String("caller", "AutoRenewMutex"), slog.String("key", key)),
		options: options,
	}
}

// NewCounterLockerFactory 回傳給 counter.Namespace 使用的鎖工廠，
// 每個計數器實例使用 prefix+"lock:"+id 作為鎖的 key
func NewCounterLockerFactory(client *redis.Client, prefix string, opts ...AutoRenewMutexOption) func(id uuid.UUID) counter.ILocker {
	return func(id uuid.UUID) counter.ILocker {
		return NewAutoRenewMutex(client, prefix+"lock:"+id.String(), opts...)
	}
}

// Lock 獲取鎖並啟動自動續期，鎖被他人持有時會持續重試直到 ctx 結束。
// 回傳的 context 會在解鎖或續期失敗時被取消。
func (m *AutoRenewMutex) Lock(ctx context.Context) (context.Context, error) {
	const op = "AutoRenewMutex.Lock"
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			err := m.Mutex.LockContext(ctx)
			if err == nil {
				lockCtx, cancel := context.WithCancel(ctx)
				m.startAutoRenew(lockCtx, cancel)
				return lockCtx, nil
			}
			var commErr *redsync.RedisError
			if !m.options.skipLockError && errors.As(err, &commErr) {
				return nil, fmt.Errorf("%s: failed to acquire lock: %w", op, err)
			}
			timer.Reset(m.options.retryDelay)
		}
	}
}

// Unlock 停止自動續期並釋放鎖
func (m *AutoRenewMutex) Unlock() (bool, error) {
	m.stopAutoRenew()
	m.wg.Wait()
	return m.Mutex.Unlock()
}

// Valid 檢查鎖是否仍在續期中且尚未過期
func (m *AutoRenewMutex) Valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renewing && time.Now().Before(m.Mutex.Until())
}

func (m *AutoRenewMutex) startAutoRenew(ctx context.Context, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renewing {
		cancel()
		return
	}

	m.cancel = cancel
	m.renewing = true
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.options.renewInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ok, err := m.Mutex.ExtendContext(ctx)
				if err != nil || !ok {
					m.logger.Warn("Fail to extend lock", slog.Any("error", err))
					m.stopAutoRenew()
					return
				}
			}
		}
	}()
}

func (m *AutoRenewMutex) stopAutoRenew() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.renewing {
		return
	}

	m.renewing = false
	if m.cancel != nil {
		m.cancel()
	}
}

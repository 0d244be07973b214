package counter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"folio/adapters/sse"
)

const countKey = "count"

// ErrStorageUnavailable 表示無法讀寫計數器的持久化儲存
var ErrStorageUnavailable = errors.New("counter storage unavailable")

// Response 是每次操作後回傳給呼叫者的結果
type Response struct {
	Count int64 `json:"count"`
}

type counterOptions struct {
	locker ILocker
	logger *slog.Logger
}

type Option func(*counterOptions)

// WithLocker 設定跨節點的互斥鎖，設定後每次操作都會重新從儲存讀取數值
func WithLocker(locker ILocker) Option {
	return func(o *counterOptions) {
		o.locker = locker
	}
}

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) Option {
	return func(o *counterOptions) {
		o.logger = logger
	}
}

// Counter 是一個持久化的整數計數器。
// 記憶體中的數值與儲存中的數值在每次操作完成後保持一致，
// 寫入失敗時記憶體中的數值不會改變。
type Counter struct {
	id      uuid.UUID
	mu      sync.Mutex
	count   int64
	storage IStorage
	feed    sse.IChannel[Response]
	logger  *slog.Logger
	options counterOptions
}

var _ ICounter = (*Counter)(nil)

// New 建立計數器並從儲存載入初始值，儲存中沒有數值時從 0 開始
func New(ctx context.Context, id uuid.UUID, storage IStorage, opts ...Option) (*Counter, error) {
	const op = "counter.New"
	if storage == nil {
		return nil, fmt.Errorf("%s: storage cannot be nil", op)
	}

	options := counterOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	count, err := load(ctx, storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Counter{
		id:      id,
		count:   count,
		storage: storage,
		feed:    sse.NewChannel[Response](),
		logger:  options.logger.With(slog.String("caller", "Counter"), slog.String("id", id.String())),
		options: options,
	}, nil
}

func load(ctx context.Context, storage IStorage) (int64, error) {
	value, found, err := storage.Get(ctx, countKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read count: %w: %w", ErrStorageUnavailable, err)
	}
	if !found || value == "" {
		return 0, nil
	}
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stored count %q: %w: %w", value, ErrStorageUnavailable, err)
	}
	return count, nil
}

// ID 回傳計數器的識別碼
func (c *Counter) ID() uuid.UUID {
	return c.id
}

// Increment 將計數加一並回傳新的數值
func (c *Counter) Increment(ctx context.Context) (Response, error) {
	return c.add(ctx, 1)
}

// Decrement 將計數減一並回傳新的數值，數值可以小於 0
func (c *Counter) Decrement(ctx context.Context) (Response, error) {
	return c.add(ctx, -1)
}

// Value 回傳目前的數值
func (c *Counter) Value(ctx context.Context) (Response, error) {
	const op = "Counter.Value"
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.locker != nil {
		count, err := load(ctx, c.storage)
		if err != nil {
			return Response{}, fmt.Errorf("%s: %w", op, err)
		}
		c.count = count
	}
	return Response{Count: c.count}, nil
}

func (c *Counter) add(ctx context.Context, delta int64) (Response, error) {
	const op = "Counter.add"
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.locker != nil {
		lockCtx, err := c.options.locker.Lock(ctx)
		if err != nil {
			return Response{}, fmt.Errorf("%s: failed to acquire lock: %w: %w", op, ErrStorageUnavailable, err)
		}
		defer func() {
			if _, err := c.options.locker.Unlock(); err != nil {
				c.logger.Warn("Fail to release counter lock", slog.Any("error", err))
			}
		}()
		ctx = lockCtx

		// 其他節點可能已經更新過數值
		count, err := load(ctx, c.storage)
		if err != nil {
			return Response{}, fmt.Errorf("%s: %w", op, err)
		}
		c.count = count
	}

	next := c.count + delta
	// 鎖在操作途中過期時，其他節點可能已經取得鎖，不能再寫入
	if c.options.locker != nil && !c.options.locker.Valid() {
		return Response{}, fmt.Errorf("%s: lock expired before write: %w", op, ErrStorageUnavailable)
	}
	if err := c.storage.Put(ctx, countKey, strconv.FormatInt(next, 10)); err != nil {
		return Response{}, fmt.Errorf("%s: failed to write count: %w: %w", op, ErrStorageUnavailable, err)
	}
	c.count = next

	response := Response{Count: next}
	c.feed.Broadcast(response)
	c.logger.Debug("Count updated", slog.Int64("delta", delta), slog.Int64("count", next))
	return response, nil
}

// Subscribe 訂閱之後每次成功更新的數值
func (c *Counter) Subscribe() <-chan Response {
	return c.feed.Subscribe()
}

// Unsubscribe 取消訂閱
func (c *Counter) Unsubscribe(ch <-chan Response) {
	c.feed.Unsubscribe(ch)
}

// Close 關閉所有訂閱
func (c *Counter) Close() {
	c.feed.UnsubscribeAll()
}

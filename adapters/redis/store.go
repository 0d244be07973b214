package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"folio/counter"
)

// Store 以 Redis 字串 key 實作 counter.IStorage
type Store struct {
	client  *redis.Client // Redis 客戶端連線
	options StoreOptions  // Store 的配置選項
}

// StoreOptions 定義了 Store 的配置選項
type StoreOptions struct {
	Prefix string
}

type StoreOption func(*StoreOptions)

// WithStorePrefix 設定 Store 的 key 前綴
func WithStorePrefix(prefix string) StoreOption {
	return func(o *StoreOptions) {
		o.Prefix = prefix
	}
}

var _ counter.IStorage = (*Store)(nil)

// NewStore 建立一個新的 Store 實例
func NewStore(client *redis.Client, opts ...StoreOption) *Store {
	options := &StoreOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Store{
		client:  client,
		options: *options,
	}
}

// Get 讀取指定 key，key 不存在時 found 為 false
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "redis.Store.Get"
	value, err := s.client.Get(ctx, s.options.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: failed to get key: %w", op, err)
	}
	return value, true, nil
}

// Put 寫入指定 key，不設定過期時間
func (s *Store) Put(ctx context.Context, key, value string) error {
	const op = "redis.Store.Put"
	if err := s.client.Set(ctx, s.options.Prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: failed to set key: %w", op, err)
	}
	return nil
}

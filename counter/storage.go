package counter

import (
	"context"
	"sync"
)

// MemoryStorage 是存放在行程記憶體中的 IStorage，重新啟動後資料會消失
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStorage 建立一個空的 MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.data[key]
	return value, found, nil
}

func (s *MemoryStorage) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// prefixedStorage 讓每個計數器實例只看得到自己的 key
type prefixedStorage struct {
	prefix string
	inner  IStorage
}

// WithPrefix 將 storage 的所有 key 加上前綴
func WithPrefix(storage IStorage, prefix string) IStorage {
	return &prefixedStorage{prefix: prefix, inner: storage}
}

func (s *prefixedStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *prefixedStorage) Put(ctx context.Context, key, value string) error {
	return s.inner.Put(ctx, s.prefix+key, value)
}

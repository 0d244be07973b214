package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"folio/counter"
	"folio/models"
)

// Store 以 SQL 資料表實作 counter.IStorage，支援 gorm 可用的任何方言
type Store struct {
	db *gorm.DB
}

var _ counter.IStorage = (*Store)(nil)

// NewStore 建立一個新的 Store 實例
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate 建立或更新 kv_entries 資料表
func (s *Store) Migrate(ctx context.Context) error {
	const op = "db.Store.Migrate"
	if err := s.db.WithContext(ctx).AutoMigrate(&models.KeyValue{}); err != nil {
		return fmt.Errorf("%s: failed to migrate: %w", op, err)
	}
	return nil
}

// Get 讀取指定 key，key 不存在時 found 為 false
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "db.Store.Get"
	var entry models.KeyValue
	result := s.db.WithContext(ctx).Where(&models.KeyValue{Key: key}).Take(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if result.Error != nil {
		return "", false, fmt.Errorf("%s: failed to find entry: %w", op, result.Error)
	}
	return entry.Value, true, nil
}

// Put 寫入指定 key，已存在時覆蓋
func (s *Store) Put(ctx context.Context, key, value string) error {
	const op = "db.Store.Put"
	entry := models.KeyValue{Key: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("%s: failed to upsert entry: %w", op, result.Error)
	}
	return nil
}

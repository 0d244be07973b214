package models

import "time"

// KeyValue 代表持久化 key-value 儲存中的一筆資料
// 計數器以字串形式保存數值，例如 "42"
type KeyValue struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone"`
}

func (KeyValue) TableName() string {
	return "kv_entries"
}

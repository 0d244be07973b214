package api

import "time"

const (
	CounterStorageMemory   = "memory"
	CounterStorageRedis    = "redis"
	CounterStoragePostgres = "postgres"
	CounterStorageSQLite   = "sqlite"
)

type ServerConfig struct {
	Production bool
	// Public 是要公開給頁面的環境變數，只會包含 PUBLIC_ 開頭的 key
	Public map[string]string

	Session SessionConfig
	Counter CounterConfig
	DB      DBConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Secrets 的第一個值用來加密，其餘只用來解密
	Secrets      []string
	KeyForCookie string
	CookieMaxAge time.Duration
}

type CounterConfig struct {
	Storage         string
	DistributedLock bool
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
	Schema   string
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

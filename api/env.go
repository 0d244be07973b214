package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"folio/counter"
)

const (
	publicEnvPrefix = "PUBLIC_"
	envContextKey   = "folio-env"
)

// Env 是每個請求都能取得的執行環境綁定
type Env struct {
	// Counters 依名稱取得計數器
	Counters   counter.INamespace
	Public     map[string]string
	Production bool
}

// PublicEnv 從 "KEY=VALUE" 形式的環境變數中挑出 PUBLIC_ 開頭的項目
func PublicEnv(environ []string) map[string]string {
	entries := lo.FilterMap(environ, func(kv string, _ int) (lo.Entry[string, string], bool) {
		key, value, ok := strings.Cut(kv, "=")
		return lo.Entry[string, string]{Key: key, Value: value}, ok && strings.HasPrefix(key, publicEnvPrefix)
	})
	return lo.FromEntries(entries)
}

// EnvMiddleware 將 Env 注入每個請求的 context
func EnvMiddleware(env Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(envContextKey, env)
		c.Next()
	}
}

// GetEnv 從 gin context 取得 Env
func GetEnv(c *gin.Context) (Env, bool) {
	v, exists := c.Get(envContextKey)
	if !exists {
		return Env{}, false
	}
	env, ok := v.(Env)
	return env, ok
}

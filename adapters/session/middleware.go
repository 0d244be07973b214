package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSessionKeyForCookie  = "__session"
	DefaultSessionKeyForContext = "folio-default-session-context"

	// 瀏覽器對單一 cookie 的大小上限
	maxCookieSize = 4096
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrCookieTooLarge  = errors.New("session cookie too large")
)

// MiddlewareOptions 包含所有 session middleware 的設定選項
type MiddlewareOptions struct {
	sessionKeyForCookie  string        // session 在 cookie 中的 key
	sessionKeyForContext string        // session 在 context 中的 key
	cookieMaxAge         time.Duration // cookie 的過期時間
	cookiePath           string        // cookie 的路徑
	cookieDomain         string        // cookie 的域名
	cookieSecure         bool          // 是否只在 HTTPS 連線中傳送 cookie
	cookieHTTPOnly       bool          // 是否禁止 JavaScript 訪問 cookie
	cookieSameSite       http.SameSite // cookie 的 SameSite 屬性
	logger               *slog.Logger
}

// MiddlewareOption 定義設定選項的函數類型
type MiddlewareOption func(*MiddlewareOptions)

// WithSessionKeyForCookie 設定 session 在 cookie 中的 key
func WithSessionKeyForCookie(key string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.sessionKeyForCookie = key
	}
}

// WithSessionKeyForContext 設定 session 在 context 中的 key
func WithSessionKeyForContext(key string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.sessionKeyForContext = key
	}
}

// WithCookieMaxAge 設定 cookie 的過期時間
func WithCookieMaxAge(maxAge time.Duration) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookieMaxAge = maxAge
	}
}

// WithCookiePath 設定 cookie 的路徑
func WithCookiePath(path string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookiePath = path
	}
}

// WithCookieDomain 設定 cookie 的域名
func WithCookieDomain(domain string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookieDomain = domain
	}
}

// WithCookieSecure 設定是否只在 HTTPS 連線中傳送 cookie
func WithCookieSecure(secure bool) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookieSecure = secure
	}
}

// WithCookieHTTPOnly 設定是否禁止 JavaScript 訪問 cookie
func WithCookieHTTPOnly(httpOnly bool) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookieHTTPOnly = httpOnly
	}
}

// WithCookieSameSite 設定 cookie 的 SameSite 屬性
func WithCookieSameSite(sameSite http.SameSite) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.cookieSameSite = sameSite
	}
}

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.logger = logger
	}
}

// GinMiddleware 建立一個 gin 的 session middleware。
// cookie 本身就是 session 的儲存位置，無法解碼的 cookie 視同不存在。
func GinMiddleware(codec ICodec, opts ...MiddlewareOption) gin.HandlerFunc {
	// 設定預設選項
	options := MiddlewareOptions{
		sessionKeyForCookie:  DefaultSessionKeyForCookie,
		sessionKeyForContext: DefaultSessionKeyForContext,
		cookieMaxAge:         30 * 24 * time.Hour,
		cookiePath:           "/",
		cookieDomain:         "",
		cookieSecure:         true,
		cookieHTTPOnly:       true,
		cookieSameSite:       http.SameSiteLaxMode,
		logger:               slog.Default(),
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger.With(slog.String("caller", "SessionMiddleware"))
	name := options.sessionKeyForCookie

	return func(c *gin.Context) {
		var data map[string]string
		isNew := true
		if value, err := c.Cookie(name); err == nil && value != "" {
			decoded, err := codec.Decode(name, value)
			if err != nil {
				logger.Debug("Ignore invalid session cookie", slog.Any("error", err))
			} else {
				data = decoded
				isNew = false
			}
		}

		commit := func(data map[string]string) error {
			value, err := codec.Encode(name, data)
			if err != nil {
				return err
			}
			if len(name)+len(value) > maxCookieSize {
				return ErrCookieTooLarge
			}
			c.SetSameSite(options.cookieSameSite)
			c.SetCookie(
				name,
				value,
				int(options.cookieMaxAge/time.Second),
				options.cookiePath,
				options.cookieDomain,
				options.cookieSecure,
				options.cookieHTTPOnly,
			)
			return nil
		}

		c.Set(options.sessionKeyForContext, NewSession(data, isNew, commit))
		c.Next()
	}
}

// GetSession 從 context 中取得 session
func GetSession(ctx context.Context, opts ...MiddlewareOption) (ISession, error) {
	const op = "session.GetSession"
	// 設定預設選項
	options := MiddlewareOptions{
		sessionKeyForContext: DefaultSessionKeyForContext,
	}
	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}
	// 從 context 中取得 session
	v := ctx.Value(options.sessionKeyForContext)
	if v == nil {
		return nil, ErrSessionNotFound
	}
	session, ok := v.(ISession)
	if !ok {
		return nil, fmt.Errorf("%s: invalid session type in context", op)
	}
	return session, nil
}

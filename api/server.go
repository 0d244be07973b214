package api

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbAdapter "folio/adapters/db"
	redisAdapter "folio/adapters/redis"
	"folio/adapters/session"
	"folio/counter"
	"folio/resume"
)

const counterNamespace = "counter"

type ServerImpl struct {
	namespace   *counter.Namespace
	codec       session.ICodec
	resume      *resume.Resume
	redisClient *redis.Client
	db          *gorm.DB
	handler     http.Handler
	closeOnce   sync.Once

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"
	impl := &ServerImpl{config: config}

	// 多個節點共用的儲存必須搭配分散式鎖，否則各節點記憶體中的數值會互相覆蓋
	if SharedCounterStorage(config.Counter.Storage) && !config.Counter.DistributedLock {
		return nil, fmt.Errorf("[%s] Counter storage %q requires the distributed lock", op, config.Counter.Storage)
	}

	// 初始化Redis連線
	if config.Redis.Addr != "" {
		impl.redisClient = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
	}

	// 初始化計數器儲存
	storage, err := impl.openCounterStorage()
	if err != nil {
		impl.Close()
		return nil, fmt.Errorf("[%s] Fail to open counter storage, err=%w", op, err)
	}
	nsOpts := []counter.NamespaceOption{counter.WithNamespaceLogger(slog.Default())}
	if config.Counter.DistributedLock {
		if impl.redisClient == nil {
			impl.Close()
			return nil, fmt.Errorf("[%s] Distributed lock requires redis", op)
		}
		nsOpts = append(nsOpts, counter.WithNamespaceLockerFactory(
			redisAdapter.NewCounterLockerFactory(
				impl.redisClient,
				config.Redis.KeyPrefix,
				redisAdapter.WithAutoRenewMutexLogger(slog.Default()),
			),
		))
	}
	impl.namespace = counter.NewNamespace(counterNamespace, storage, nsOpts...)

	// 初始化session編碼器
	secrets := config.Session.Secrets
	if len(secrets) == 0 && !config.Production {
		secret, err := randomSecret()
		if err != nil {
			impl.Close()
			return nil, fmt.Errorf("[%s] Fail to generate session secret, err=%w", op, err)
		}
		slog.Warn("No session secret configured, sessions will not survive a restart")
		secrets = []string{secret}
	}
	codecOpts := []session.CodecOption{}
	if config.Session.CookieMaxAge > 0 {
		codecOpts = append(codecOpts, session.WithCodecMaxAge(config.Session.CookieMaxAge))
	}
	impl.codec, err = session.NewSecureCodec(secrets, codecOpts...)
	if err != nil {
		impl.Close()
		return nil, fmt.Errorf("[%s] Fail to create session codec, err=%w", op, err)
	}

	// 載入履歷資料
	impl.resume, err = resume.Default()
	if err != nil {
		impl.Close()
		return nil, fmt.Errorf("[%s] Fail to load resume, err=%w", op, err)
	}

	env := Env{
		Counters:   impl.namespace,
		Public:     config.Public,
		Production: config.Production,
	}
	impl.handler = NewDispatcher(
		CounterPrefix,
		NewCounterRouter(env),
		NewPageRouter(env, NewPageHandler(impl.resume), impl.SessionMiddleware()),
	)
	return impl, nil
}

// SharedCounterStorage 判斷儲存是否可能被多個節點同時寫入
func SharedCounterStorage(storage string) bool {
	return storage == CounterStorageRedis || storage == CounterStoragePostgres
}

func (impl *ServerImpl) openCounterStorage() (counter.IStorage, error) {
	switch impl.config.Counter.Storage {
	case "", CounterStorageMemory:
		slog.Warn("Counter uses in-memory storage, values are lost on restart")
		return counter.NewMemoryStorage(), nil
	case CounterStorageRedis:
		if impl.redisClient == nil {
			return nil, fmt.Errorf("redis storage requires redis-addr")
		}
		return redisAdapter.NewStore(
			impl.redisClient,
			redisAdapter.WithStorePrefix(impl.config.Redis.KeyPrefix),
		), nil
	case CounterStoragePostgres:
		db := impl.config.DB
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s", db.User, db.Password, db.Host, db.Port, db.Database, db.Schema)
		return impl.openSQLStorage(postgres.Open(dsn))
	case CounterStorageSQLite:
		return impl.openSQLStorage(sqlite.Open(impl.config.SQLite.Path))
	default:
		return nil, fmt.Errorf("unknown counter storage %q", impl.config.Counter.Storage)
	}
}

func (impl *ServerImpl) openSQLStorage(dialector gorm.Dialector) (counter.IStorage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to database, err=%w", err)
	}
	impl.db = db
	store := dbAdapter.NewStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// SessionMiddleware 建立以 cookie 保存的 session middleware
func (impl *ServerImpl) SessionMiddleware() gin.HandlerFunc {
	opts := []session.MiddlewareOption{
		session.WithCookieSecure(impl.config.Production),
		session.WithLogger(slog.Default()),
	}
	if impl.config.Session.KeyForCookie != "" {
		opts = append(opts, session.WithSessionKeyForCookie(impl.config.Session.KeyForCookie))
	}
	if impl.config.Session.CookieMaxAge > 0 {
		opts = append(opts, session.WithCookieMaxAge(impl.config.Session.CookieMaxAge))
	}
	return session.GinMiddleware(impl.codec, opts...)
}

// Handler 回傳整個服務的入口
func (impl *ServerImpl) Handler() http.Handler {
	return impl.handler
}

// CloseSubscriptions 結束所有計數器的訂閱，讓 SSE 連線可以先結束，
// 儲存連線仍然可用，進行中的請求可以正常完成
func (impl *ServerImpl) CloseSubscriptions() {
	if impl.namespace != nil {
		impl.namespace.Close()
	}
}

func (impl *ServerImpl) Close() {
	impl.closeOnce.Do(func() {
		// 關閉計數器的訂閱
		impl.CloseSubscriptions()
		// 關閉資料庫連線
		if impl.db != nil {
			if sqlDB, err := impl.db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		// 關閉Redis連線
		if impl.redisClient != nil {
			impl.redisClient.Close()
		}
	})
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

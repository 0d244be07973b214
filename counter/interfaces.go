//go:generate mockgen -package=counter -destination=mock.go -source=interfaces.go

package counter

import (
	"context"

	"github.com/google/uuid"
)

// IStorage 是計數器使用的持久化 key-value 儲存
type IStorage interface {
	// Get 讀取指定 key，key 不存在時 found 為 false
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Put 寫入指定 key
	Put(ctx context.Context, key, value string) error
}

// ILocker 是跨節點的互斥鎖，redis.IAutoRenewMutex 滿足此介面
type ILocker interface {
	Lock(ctx context.Context) (context.Context, error)
	Unlock() (bool, error)
	// Valid 表示鎖仍由自己持有且尚未過期
	Valid() bool
}

// ICounter 定義了單一計數器實例的操作
type ICounter interface {
	ID() uuid.UUID
	Increment(ctx context.Context) (Response, error)
	Decrement(ctx context.Context) (Response, error)
	Value(ctx context.Context) (Response, error)
	Subscribe() <-chan Response
	Unsubscribe(ch <-chan Response)
}

// INamespace 依名稱取得（必要時建立）唯一的計數器實例
type INamespace interface {
	IDFromName(name string) uuid.UUID
	Get(ctx context.Context, name string) (ICounter, error)
}

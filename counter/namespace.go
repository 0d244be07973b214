package counter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// DefaultName 是網站使用的計數器名稱
const DefaultName = "A"

// namespaceRoot 是所有 namespace 衍生 UUID 的根
var namespaceRoot = uuid.MustParse("5f0c8a0e-6f7b-4d0e-9a43-0b3c1d2e4f51")

type namespaceOptions struct {
	lockerFactory func(id uuid.UUID) ILocker
	logger        *slog.Logger
}

type NamespaceOption func(*namespaceOptions)

// WithNamespaceLockerFactory 設定每個計數器實例使用的跨節點互斥鎖
func WithNamespaceLockerFactory(factory func(id uuid.UUID) ILocker) NamespaceOption {
	return func(o *namespaceOptions) {
		o.lockerFactory = factory
	}
}

// WithNamespaceLogger 設置日誌記錄器
func WithNamespaceLogger(logger *slog.Logger) NamespaceOption {
	return func(o *namespaceOptions) {
		o.logger = logger
	}
}

// Namespace 依名稱管理計數器實例，同一個名稱在同一個 namespace 中只會有一個實例
type Namespace struct {
	name      string
	space     uuid.UUID
	storage   IStorage
	mu        sync.Mutex
	instances map[uuid.UUID]*Counter
	logger    *slog.Logger
	options   namespaceOptions
}

var _ INamespace = (*Namespace)(nil)

// NewNamespace 建立一個 namespace，所有實例共用同一個 storage 但使用各自的 key 前綴
func NewNamespace(name string, storage IStorage, opts ...NamespaceOption) *Namespace {
	options := namespaceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Namespace{
		name:      name,
		space:     uuid.NewSHA1(namespaceRoot, []byte(name)),
		storage:   storage,
		instances: make(map[uuid.UUID]*Counter),
		logger:    options.logger.With(slog.String("caller", "Namespace"), slog.String("namespace", name)),
		options:   options,
	}
}

// IDFromName 由名稱決定實例的識別碼，相同名稱永遠得到相同結果
func (n *Namespace) IDFromName(name string) uuid.UUID {
	return uuid.NewSHA1(n.space, []byte(name))
}

// Get 取得指定名稱的計數器，第一次存取時才建立並載入數值。
// 建立失敗時不會保留實例，下次呼叫會重新嘗試。
func (n *Namespace) Get(ctx context.Context, name string) (ICounter, error) {
	const op = "Namespace.Get"
	id := n.IDFromName(name)

	n.mu.Lock()
	defer n.mu.Unlock()

	if instance, ok := n.instances[id]; ok {
		return instance, nil
	}

	opts := []Option{WithLogger(n.options.logger)}
	if n.options.lockerFactory != nil {
		opts = append(opts, WithLocker(n.options.lockerFactory(id)))
	}
	instance, err := New(ctx, id, WithPrefix(n.storage, n.name+":"+id.String()+":"), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create counter %q: %w", op, name, err)
	}
	n.instances[id] = instance
	n.logger.Info("Counter instance created", slog.String("name", name), slog.String("id", id.String()))
	return instance, nil
}

// Close 關閉所有實例的訂閱
func (n *Namespace) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, instance := range n.instances {
		instance.Close()
	}
	clear(n.instances)
}

package sse

import (
	"context"
	"sync"

	"github.com/smallnest/chanx"
)

const defaultSubscriberBuffer = 16

type subscriber[T any] struct {
	buffer *chanx.UnboundedChan[T]
	cancel context.CancelFunc
}

// Channel 管理同一個主題的所有訂閱者，並將接收到的訊息廣播給所有訂閱者。
// 每個訂閱者都有自己的無上限緩衝，廣播方不需等待讀取。
type Channel[T any] struct {
	subscribers map[<-chan T]subscriber[T]
	mu          sync.RWMutex
}

// NewChannel creates a new SSE channel.
func NewChannel[T any]() IChannel[T] {
	return &Channel[T]{
		subscribers: make(map[<-chan T]subscriber[T]),
	}
}

// Subscribe 建立一個新的緩衝通道並加入 subscribers，回傳唯讀通道給呼叫者。
func (c *Channel[T]) Subscribe() <-chan T {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctx, cancel := context.WithCancel(context.Background())
	buffer := chanx.NewUnboundedChan[T](ctx, defaultSubscriberBuffer)
	c.subscribers[buffer.Out] = subscriber[T]{buffer: buffer, cancel: cancel}
	return buffer.Out
}

// Unsubscribe 從 subscribers 中移除指定的通道，讀取端會在緩衝結束後收到關閉。
func (c *Channel[T]) Unsubscribe(ch <-chan T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, exists := c.subscribers[ch]; exists {
		delete(c.subscribers, ch)
		s.cancel()
	}
}

// UnsubscribeAll 關閉所有訂閱者的通道並清空訂閱清單。
func (c *Channel[T]) UnsubscribeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.subscribers {
		s.cancel()
	}
	clear(c.subscribers)
}

// Broadcast 將訊息放入所有仍在訂閱清單中的緩衝。
func (c *Channel[T]) Broadcast(message T) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.subscribers {
		s.buffer.In <- message
	}
}

// IsIdle 判斷 subscribers 是否為空。
func (c *Channel[T]) IsIdle() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers) == 0
}

package sse

// IChannel 定義了 SSE 頻道的介面
type IChannel[T any] interface {
	// Subscribe 建立一個新的訂閱並返回接收訊息的通道
	Subscribe() <-chan T
	// Unsubscribe 取消指定通道的訂閱
	Unsubscribe(ch <-chan T)
	// UnsubscribeAll 取消所有訂閱
	UnsubscribeAll()
	// Broadcast 將訊息廣播給所有訂閱者，不會因為訂閱者讀取緩慢而阻塞
	Broadcast(message T)
	// IsIdle 檢查是否沒有訂閱者
	IsIdle() bool
}

package sse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Message 是測試用的廣播內容
type Message struct {
	Data string `json:"data"`
}

// receive 在一秒內從通道取得一則訊息
func receive(t *testing.T, ch <-chan Message) Message {
	t.Helper()
	select {
	case received, ok := <-ch:
		assert.True(t, ok, "channel closed unexpectedly")
		return received
	case <-time.After(time.Second):
		t.Fatal("did not receive message in time")
	}
	return Message{}
}

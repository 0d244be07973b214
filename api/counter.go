package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"folio/counter"
)

const (
	CounterPrefix = "/counter"
	// CounterName 是整個網站共用的計數器名稱
	CounterName = counter.DefaultName

	heartbeatInterval = 30 * time.Second
)

type errorResponse struct {
	Message string `json:"message"`
}

// NewCounterRouter 建立處理 /counter 前綴的 router
func NewCounterRouter(env Env) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), EnvMiddleware(env))

	group := router.Group(CounterPrefix)
	group.GET("", GetCounter)
	group.POST("/increment", PostCounterIncrement)
	group.POST("/decrement", PostCounterDecrement)
	group.GET("/events", GetCounterEvents)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Message: "not found"})
	})
	return router
}

// 取得共用的計數器，失敗時直接寫出錯誤回應
func counterFromContext(c *gin.Context) (counter.ICounter, bool) {
	env, ok := GetEnv(c)
	if !ok || env.Counters == nil {
		slog.Error("Counter namespace is not bound", slog.String("caller", "counterFromContext"))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "counter is not available"})
		return nil, false
	}
	ctr, err := env.Counters.Get(c.Request.Context(), CounterName)
	if err != nil {
		respondCounterError(c, err)
		return nil, false
	}
	return ctr, true
}

func respondCounterError(c *gin.Context, err error) {
	slog.Error("Counter operation failed", slog.String("path", c.Request.URL.Path), slog.Any("error", err))
	if errors.Is(err, counter.ErrStorageUnavailable) {
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "counter storage unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

func runCounterOp(c *gin.Context, op func(counter.ICounter, context.Context) (counter.Response, error)) {
	ctr, ok := counterFromContext(c)
	if !ok {
		return
	}
	resp, err := op(ctr, c.Request.Context())
	if err != nil {
		respondCounterError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get the current counter value
// (GET /counter)
func GetCounter(c *gin.Context) {
	runCounterOp(c, counter.ICounter.Value)
}

// Increment the counter
// (POST /counter/increment)
func PostCounterIncrement(c *gin.Context) {
	runCounterOp(c, counter.ICounter.Increment)
}

// Decrement the counter
// (POST /counter/decrement)
func PostCounterDecrement(c *gin.Context) {
	runCounterOp(c, counter.ICounter.Decrement)
}

// Stream counter changes
// (GET /counter/events)
func GetCounterEvents(c *gin.Context) {
	ctr, ok := counterFromContext(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	// 先訂閱再讀取目前的值，避免漏掉兩者之間的變更
	ch := ctr.Subscribe()
	defer ctr.Unsubscribe(ch)
	current, err := ctr.Value(ctx)
	if err != nil {
		respondCounterError(c, err)
		return
	}

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	c.SSEvent("count", current)
	w.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case resp, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("count", resp)
			w.Flush()
		// 定期送出空行，確保瀏覽器和代理伺服器不會斷開連線
		case <-heartbeat.C:
			w.WriteString("\n\n")
			w.Flush()
		}
	}
}

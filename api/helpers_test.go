package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	// 將日誌輸出重定向到io.Discard
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() ServerConfig {
	return ServerConfig{
		Public: map[string]string{"PUBLIC_VALUE": "value1"},
		Session: SessionConfig{
			Secrets: []string{"test-secret"},
		},
		Counter: CounterConfig{
			Storage: CounterStorageMemory,
		},
	}
}

func setupServer(t *testing.T, config ServerConfig) *ServerImpl {
	server, err := NewServer(config)
	require.NoError(t, err)
	t.Cleanup(server.Close)
	return server
}

func do(h http.Handler, method, target string, header http.Header, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return doBody(h, method, target, nil, header, cookies...)
}

func doBody(h http.Handler, method, target string, body io.Reader, header http.Header, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header[k] = v
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

package api

import (
	"net/http"
	"strings"
)

// Dispatcher 是所有請求的入口，依路徑前綴分派到計數器或頁面
type Dispatcher struct {
	prefix  string
	counter http.Handler
	page    http.Handler
}

var _ http.Handler = (*Dispatcher)(nil)

// NewDispatcher 建立一個新的 Dispatcher，路徑以 prefix 開頭的請求都交給 counter
func NewDispatcher(prefix string, counter, page http.Handler) *Dispatcher {
	return &Dispatcher{
		prefix:  prefix,
		counter: counter,
		page:    page,
	}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, d.prefix) {
		d.counter.ServeHTTP(w, r)
		return
	}
	d.page.ServeHTTP(w, r)
}

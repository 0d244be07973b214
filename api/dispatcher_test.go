package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher(t *testing.T) {
	named := func(name string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(name + ":" + r.URL.Path))
		})
	}
	d := NewDispatcher("/counter", named("counter"), named("page"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "exact prefix", path: "/counter", want: "counter:/counter"},
		{name: "sub path", path: "/counter/increment", want: "counter:/counter/increment"},
		{name: "trailing slash", path: "/counter/", want: "counter:/counter/"},
		{name: "longer segment", path: "/counters", want: "counter:/counters"},
		{name: "prefix inside path", path: "/about/counter", want: "page:/about/counter"},
		{name: "root", path: "/", want: "page:/"},
		{name: "other page", path: "/data", want: "page:/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(d, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

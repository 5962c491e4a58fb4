package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"listed origin", []string{"http://localhost:5173"}, "http://localhost:5173", "http://localhost:5173"},
		{"unlisted origin", []string{"http://localhost:5173"}, "http://evil.test", ""},
		{"wildcard", []string{"*"}, "http://any.test", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEchoRouter(CORS(tt.allowed))

			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{
			name:       "wildcard echoes any origin",
			allowed:    []string{"*"},
			origin:     "https://dashboard.example.com",
			method:     http.MethodGet,
			wantOrigin: "https://dashboard.example.com",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "listed origin",
			allowed:    []string{"http://localhost:3000", " https://app.example.com/ "},
			origin:     "https://app.example.com",
			method:     http.MethodGet,
			wantOrigin: "https://app.example.com",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "unlisted origin gets no headers",
			allowed:    []string{"http://localhost:3000"},
			origin:     "https://evil.example.com",
			method:     http.MethodGet,
			wantOrigin: "",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "preflight short circuits",
			allowed:    []string{"*"},
			origin:     "http://localhost:3000",
			method:     http.MethodOptions,
			wantOrigin: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/deals", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

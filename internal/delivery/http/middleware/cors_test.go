package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantMethod string
	}{
		{"allowed preflight", []string{"http://localhost:3000/"}, http.MethodOptions, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000", corsAllowMethods},
		{"disallowed preflight", []string{"http://localhost:3000"}, http.MethodOptions, "http://evil.example.com", http.StatusNoContent, "", ""},
		{"allowed request", []string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000", http.StatusOK, "http://localhost:3000", ""},
		{"disallowed request passes without headers", []string{"http://localhost:3000"}, http.MethodGet, "http://evil.example.com", http.StatusOK, "", ""},
		{"wildcard", []string{"*"}, http.MethodPut, "https://campus.example.com", http.StatusOK, "https://campus.example.com", ""},
		{"no origin header", []string{"*"}, http.MethodGet, "", http.StatusOK, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/timetable", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethod, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Origin", rr.Header().Get("Vary"))
		})
	}
}

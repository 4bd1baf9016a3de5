package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedEndpoint(token string, hit *bool) http.Handler {
	return AdminAuth(token)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	var hit bool
	h := protectedEndpoint("secret-token", &hit)

	req := httptest.NewRequest("GET", "/api/admin/applicants", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestAdminAuthRejectsBeforeHandlerRuns(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
	}{
		{"missing header", "secret-token", ""},
		{"wrong scheme", "secret-token", "Basic secret-token"},
		{"wrong token", "secret-token", "Bearer other-token"},
		{"admin disabled", "", "Bearer anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit bool
			h := protectedEndpoint(tt.token, &hit)

			req := httptest.NewRequest("PATCH", "/api/admin/applicants", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, hit, "handler must not run on auth failure")
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "generated when missing", header: "", reuse: false},
		{name: "reused when valid", header: "req-123_abc", reuse: true},
		{name: "replaced when it has spaces", header: "req 123", reuse: false},
		{name: "replaced when it has slashes", header: "req/123", reuse: false},
		{name: "replaced when too long", header: strings.Repeat("a", 129), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			RequestID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)

			if tt.reuse {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// RequestIDHeader содержит имя заголовка с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey       contextKey = "requestID"
	maxRequestIDLength            = 128
)

type contextKey string

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// RequestID присваивает каждому запросу идентификатор. Корректный
// идентификатор клиента из заголовка X-Request-ID используется повторно,
// иначе генерируется новый UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !isValidRequestID(id) {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает идентификатор запроса из контекста.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	return validRequestID.MatchString(id)
}

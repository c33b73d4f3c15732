package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (l *loggingResponseWriter) Write(b []byte) (int, error) {
	if l.data.status == 0 {
		l.data.status = http.StatusOK
	}
	size, err := l.ResponseWriter.Write(b)
	l.data.size += size
	return size, err
}

func (l *loggingResponseWriter) WriteHeader(statusCode int) {
	if l.data.status == 0 {
		l.data.status = statusCode
	}
	l.ResponseWriter.WriteHeader(statusCode)
}

func wrapResponseWriter(w http.ResponseWriter) (*loggingResponseWriter, *responseData) {
	data := &responseData{}
	return &loggingResponseWriter{ResponseWriter: w, data: data}, data
}

// Logger возвращает middleware, которое записывает в лог метод, путь, статус,
// размер ответа и длительность обработки каждого запроса.
// Тело запроса не логируется, так как может содержать номер карты.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw, data := wrapResponseWriter(w)
			next.ServeHTTP(lw, r)

			status := data.status
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("size", data.size),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", RequestIDFromContext(r.Context())),
			)
		})
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mmeshcher/cardcheck/internal/metrics"
)

// Instrument возвращает middleware, измеряющее длительность обработки запросов.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw, data := wrapResponseWriter(w)
			next.ServeHTTP(lw, r)

			status := data.status
			if status == 0 {
				status = http.StatusOK
			}

			m.RequestDuration.
				WithLabelValues(r.Method, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
		})
	}
}

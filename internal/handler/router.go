package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	custommiddleware "github.com/mmeshcher/cardcheck/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса проверки карт.
// gatherer используется маршрутом /metrics; nil означает реестр по умолчанию.
func (h *Handler) SetupRouter(gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))
	if h.metrics != nil {
		r.Use(custommiddleware.Instrument(h.metrics))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/cards/validate", h.ValidateCard)
		r.Post("/passwords/validate", h.ValidatePassword)
		r.Get("/temperature/convert", h.ConvertTemperature)
		r.Post("/calculator", h.Calculate)
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}

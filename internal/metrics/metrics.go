// Package metrics содержит метрики Prometheus сервиса проверки карт.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics хранит счётчики проверок, выполненных сервисом.
type Metrics struct {
	CardChecks      *prometheus.CounterVec
	PasswordChecks  *prometheus.CounterVec
	Conversions     *prometheus.CounterVec
	Calculations    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics создаёт метрики и регистрирует их в reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CardChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_card_checks_total",
			Help: "Total card number checks by result reason",
		}, []string{"reason"}),
		PasswordChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_password_checks_total",
			Help: "Total password checks by result reason",
		}, []string{"reason"}),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_temperature_conversions_total",
			Help: "Total temperature conversions by source scale",
		}, []string{"scale"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_calculations_total",
			Help: "Total calculator operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cardcheck_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
	reg.MustRegister(
		m.CardChecks,
		m.PasswordChecks,
		m.Conversions,
		m.Calculations,
		m.RequestDuration,
	)
	return m
}

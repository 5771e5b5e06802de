// Package metrics expõe os coletores Prometheus da API e o middleware
// Fiber que os alimenta.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda os coletores específicos da aplicação.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "crm",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requisições HTTP em andamento.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crm",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "path"},
	)

	reportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "reports",
			Name:      "generated_total",
			Help:      "Total de relatórios gerados, por tipo.",
		},
		[]string{"type"},
	)
)

func init() {
	Registry.MustRegister(httpInFlight, httpRequests, httpDuration, reportsGenerated)
}

// Handler devolve o endpoint /metrics servindo o registry da aplicação.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ReportGenerated registra a geração de um relatório do tipo dado.
func ReportGenerated(reportType string) {
	reportsGenerated.WithLabelValues(reportType).Inc()
}

// Middleware instrumenta cada requisição com contagem, duração e in-flight.
// Usa o padrão da rota (ex.: /api/sales/:id) para não explodir a cardinalidade.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		path := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

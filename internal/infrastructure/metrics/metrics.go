// Package metrics expone métricas Prometheus del servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Métricas HTTP generales.
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets, // [0.005..10]
		},
		[]string{"method", "path", "status"},
	)
)

// Init registra las métricas en el registro por defecto.
func Init() {
	prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration)
}

// Handler devuelve el handler de Prometheus (se monta vía adaptor en Fiber).
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument middleware Fiber que mide RPS, latencia y requests en vuelo.
// Usa el path de la ruta registrada (no la URL cruda) para acotar la
// cardinalidad de las etiquetas. Las observaciones van en un defer: si un
// handler entra en pánico y el recover middleware lo convierte en 500, el
// gauge de in-flight igual debe decrementarse.
func Instrument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpInFlight.Inc()
		start := time.Now()

		defer func() {
			duration := time.Since(start).Seconds()
			path := c.Route().Path
			method := c.Method()
			status := strconv.Itoa(c.Response().StatusCode())

			httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			httpInFlight.Dec()
		}()

		return c.Next()
	}
}

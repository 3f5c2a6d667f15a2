// Package metrics expone contadores Prometheus del ledger de inventario, las estadísticas
// y las peticiones HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Resultados posibles de un movimiento.
const (
	OutcomeRecorded = "recorded"
	OutcomeRejected = "rejected" // validación o producto inexistente
	OutcomeFailed   = "failed"   // error de transacción
)

// Metrics agrupa los colectores de la aplicación. Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	movements     *prometheus.CounterVec
	statsDuration prometheus.Histogram
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New registra los colectores en reg. Con reg nil devuelve un Metrics sin colectores.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_movements_total",
			Help: "Stock movements processed by the ledger.",
		}, []string{"type", "outcome"}),
		statsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stats_compute_duration_seconds",
			Help:    "Duration of the aggregate stats computation.",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.movements, m.statsDuration, m.httpRequests, m.httpDuration)
	return m
}

// NewRegistry crea un registro con los colectores de runtime de Go y de proceso.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// IncMovement cuenta un movimiento por tipo y resultado.
func (m *Metrics) IncMovement(movementType, outcome string) {
	if m == nil || m.movements == nil {
		return
	}
	if movementType == "" {
		movementType = "unknown"
	}
	m.movements.WithLabelValues(movementType, outcome).Inc()
}

// ObserveStats registra la duración del cálculo de estadísticas.
func (m *Metrics) ObserveStats(d time.Duration) {
	if m == nil || m.statsDuration == nil {
		return
	}
	m.statsDuration.Observe(d.Seconds())
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil || m.httpRequests == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

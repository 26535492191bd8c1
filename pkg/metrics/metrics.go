package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Доменные метрики
	AvailabilityResolved *prometheus.CounterVec
	PricingRulesSkipped  *prometheus.CounterVec
	BookingsExpired      prometheus.Counter
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitDurationTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AvailabilityResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_resolved_total",
			Help:        "Number of availability resolutions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		PricingRulesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_rules_skipped_total",
			Help:        "Number of malformed pricing rules skipped during resolution",
			ConstLabels: constLabels,
		}, []string{"rule_type"}),

		BookingsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_expired_total",
			Help:        "Number of pending bookings cancelled by the expiry job",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.AvailabilityResolved,
		m.PricingRulesSkipped,
		m.BookingsExpired,
	)

	return m
}

// IncAvailabilityResolved увеличивает счетчик расчетов доступности
// Безопасно вызывать на nil
func (m *Metrics) IncAvailabilityResolved(outcome string) {
	if m == nil {
		return
	}
	m.AvailabilityResolved.WithLabelValues(outcome).Inc()
}

// IncPricingRuleSkipped увеличивает счетчик пропущенных правил цены
// Безопасно вызывать на nil
func (m *Metrics) IncPricingRuleSkipped(ruleType string) {
	if m == nil {
		return
	}
	m.PricingRulesSkipped.WithLabelValues(ruleType).Inc()
}

// AddBookingsExpired увеличивает счетчик истекших бронирований
// Безопасно вызывать на nil
func (m *Metrics) AddBookingsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsExpired.Add(float64(n))
}

package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-коллекторов сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge

	settlements        *prometheus.CounterVec
	settlementDuration *prometheus.HistogramVec
	bookingsCreated    *prometheus.CounterVec
	statusTransitions  *prometheus.CounterVec
	conflicts          *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики в указанном registry (используется в тестах)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_settlements_total",
			Help:        "Payment settlement attempts by method and result",
			ConstLabels: constLabels,
		}, []string{"method", "payment_status", "result"}),
		settlementDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "payment_settlement_duration_seconds",
			Help:        "Time spent in payment authorization",
			ConstLabels: constLabels,
			Buckets:     []float64{.05, .1, .5, 1, 2, 3, 5, 10},
		}, []string{"method"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted by resource type and initial status",
			ConstLabels: constLabels,
		}, []string{"resource_type", "status"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Booking status transitions applied by staff",
			ConstLabels: constLabels,
		}, []string{"resource_type", "from", "to"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_write_conflicts_total",
			Help:        "Optimistic concurrency conflicts on booking writes",
			ConstLabels: constLabels,
		}, []string{"resource_type", "operation"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.settlements,
		m.settlementDuration,
		m.bookingsCreated,
		m.statusTransitions,
		m.conflicts,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполнение SQL запроса
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет метрики connection pool
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// ObserveSettlement фиксирует попытку оплаты (result: ok, timeout, cancelled, invalid, declined)
func (m *Metrics) ObserveSettlement(method, paymentStatus, result string, duration time.Duration) {
	m.settlements.WithLabelValues(method, paymentStatus, result).Inc()
	m.settlementDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// IncBookingCreated фиксирует созданное бронирование
func (m *Metrics) IncBookingCreated(resourceType, status string) {
	m.bookingsCreated.WithLabelValues(resourceType, status).Inc()
}

// IncStatusTransition фиксирует смену статуса бронирования
func (m *Metrics) IncStatusTransition(resourceType, from, to string) {
	m.statusTransitions.WithLabelValues(resourceType, from, to).Inc()
}

// IncConflict фиксирует конфликт оптимистичной блокировки
func (m *Metrics) IncConflict(resourceType, operation string) {
	m.conflicts.WithLabelValues(resourceType, operation).Inc()
}

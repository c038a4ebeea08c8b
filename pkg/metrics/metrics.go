package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
	DBQueryDuration   *prometheus.HistogramVec

	AvailabilityRequests *prometheus.CounterVec
	AppointmentsCreated  *prometheus.CounterVec
	AppointmentsRejected *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	// "service" занят меткой услуги салона, поэтому имя сервиса идет в "app"
	constLabels := prometheus.Labels{"app": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		AvailabilityRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_requests_total",
			Help:        "Number of availability calculations by service",
			ConstLabels: constLabels,
		}, []string{"service"}),
		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Number of appointments created by service",
			ConstLabels: constLabels,
		}, []string{"service"}),
		AppointmentsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_rejected_total",
			Help:        "Number of rejected booking attempts by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.DBQueryDuration,
		m.AvailabilityRequests,
		m.AppointmentsCreated,
		m.AppointmentsRejected,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncAvailabilityRequest считает расчет доступности. Безопасен для nil
func (m *Metrics) IncAvailabilityRequest(service string) {
	if m == nil {
		return
	}
	m.AvailabilityRequests.WithLabelValues(service).Inc()
}

// IncAppointmentCreated считает созданный термин. Безопасен для nil
func (m *Metrics) IncAppointmentCreated(service string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(service).Inc()
}

// IncAppointmentRejected считает отклоненную попытку бронирования. Безопасен для nil
func (m *Metrics) IncAppointmentRejected(reason string) {
	if m == nil {
		return
	}
	m.AppointmentsRejected.WithLabelValues(reason).Inc()
}

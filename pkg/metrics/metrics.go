package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        *prometheus.GaugeVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec

	maskApplications *prometheus.CounterVec
	schedulesSaved   *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
		httpInFlight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}, []string{}),
		dbQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),
		dbInUseConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),
		dbIdleConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),
		maskApplications: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "mask_applications_total",
			Help:        "Number of mask applications by spec kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		schedulesSaved: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedules_saved_total",
			Help:        "Number of saved schedules by action",
			ConstLabels: constLabels,
		}, []string{"action"}),
	}
}

// RecordHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncInFlight увеличивает счётчик обрабатываемых запросов
func (m *Metrics) IncInFlight() {
	if m == nil {
		return
	}
	m.httpInFlight.WithLabelValues().Inc()
}

// DecInFlight уменьшает счётчик обрабатываемых запросов
func (m *Metrics) DecInFlight() {
	if m == nil {
		return
	}
	m.httpInFlight.WithLabelValues().Dec()
}

// RecordDBQuery фиксирует запрос к БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues().Set(float64(open))
	m.dbInUseConns.WithLabelValues().Set(float64(inUse))
	m.dbIdleConns.WithLabelValues().Set(float64(idle))
}

// IncMaskApplication фиксирует применение маски (kind: builtin|pattern)
func (m *Metrics) IncMaskApplication(kind string) {
	if m == nil {
		return
	}
	m.maskApplications.WithLabelValues(kind).Inc()
}

// IncScheduleSaved фиксирует сохранение записи (action: created|updated|completed)
func (m *Metrics) IncScheduleSaved(action string) {
	if m == nil {
		return
	}
	m.schedulesSaved.WithLabelValues(action).Inc()
}

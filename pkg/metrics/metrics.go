package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics сборщик метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// База данных
	dbQueryDuration    *prometheus.HistogramVec
	dbQueryErrors      *prometheus.CounterVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	// Бизнес-метрики аренды
	rentalsCreated   *prometheus.CounterVec
	rentalsCompleted *prometheus.CounterVec
	rentalConflicts  prometheus.Counter
	feesCharged      *prometheus.CounterVec
	overdueRentals   prometheus.Gauge
	overdueSurcharge prometheus.Gauge
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
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
			Help:        "Total number of failed database operations",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		rentalsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rentals_created_total",
			Help:        "Rentals created, by plan",
			ConstLabels: constLabels,
		}, []string{"plan"}),

		rentalsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rentals_completed_total",
			Help:        "Rentals completed, by return kind (early, on_time, late)",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		rentalConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rental_conflicts_total",
			Help:        "Rental requests rejected because the asset was taken",
			ConstLabels: constLabels,
		}),

		feesCharged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rental_fees_charged_total",
			Help:        "Sum of early-return fines and late-return surcharges charged",
			ConstLabels: constLabels,
		}, []string{"type"}),

		overdueRentals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "overdue_rentals",
			Help:        "Active rentals past their expected end date at the last report",
			ConstLabels: constLabels,
		}),

		overdueSurcharge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "overdue_surcharge_total",
			Help:        "Late surcharge accrued by overdue rentals at the last report",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.dbWaitCount,
		m.rentalsCreated,
		m.rentalsCompleted,
		m.rentalConflicts,
		m.feesCharged,
		m.overdueRentals,
		m.overdueSurcharge,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Методы ниже безопасно вызывать на nil *Metrics (метрики выключены в конфиге)

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненную операцию с БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
	m.dbIdleConnections.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

// IncRentalCreated увеличивает счётчик созданных аренд
func (m *Metrics) IncRentalCreated(planDays int) {
	if m == nil {
		return
	}
	m.rentalsCreated.WithLabelValues(strconv.Itoa(planDays)).Inc()
}

// IncRentalConflict увеличивает счётчик отказов из-за занятости транспорта
func (m *Metrics) IncRentalConflict() {
	if m == nil {
		return
	}
	m.rentalConflicts.Inc()
}

// ObserveRentalCompleted фиксирует завершение аренды и начисленные сборы
func (m *Metrics) ObserveRentalCompleted(kind string, fine, surcharge *decimal.Decimal) {
	if m == nil {
		return
	}
	m.rentalsCompleted.WithLabelValues(kind).Inc()
	if fine != nil {
		m.feesCharged.WithLabelValues("fine").Add(fine.InexactFloat64())
	}
	if surcharge != nil {
		m.feesCharged.WithLabelValues("late_surcharge").Add(surcharge.InexactFloat64())
	}
}

// SetOverdue обновляет метрики просроченных аренд
func (m *Metrics) SetOverdue(count int, surcharge decimal.Decimal) {
	if m == nil {
		return
	}
	m.overdueRentals.Set(float64(count))
	m.overdueSurcharge.Set(surcharge.InexactFloat64())
}

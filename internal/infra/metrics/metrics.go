package metrics

import (
	"net/http"
	"strconv"
	"time"

	"contacts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "contacts"

// Metrics owns a private registry so tests and both binaries stay isolated.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	personsCreated  prometheus.Counter
	personsUpdated  prometheus.Counter
	personsDeleted  prometheus.Counter
	countriesAdded  prometheus.Counter
	reports         *prometheus.CounterVec
	eventsProcessed *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		personsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persons_created_total",
			Help:      "Persons added.",
		}),
		personsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persons_updated_total",
			Help:      "Persons edited.",
		}),
		personsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persons_deleted_total",
			Help:      "Persons deleted.",
		}),
		countriesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countries_added_total",
			Help:      "Countries added one by one or from a spreadsheet upload.",
		}),
		reports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Person reports rendered, by format.",
		}, []string{"format"}),
		eventsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "events_processed_total",
			Help:      "Contact events handled by the worker, by type and outcome.",
		}, []string{"type", "outcome"}),
	}
}

func (m *Metrics) PersonCreated() { m.personsCreated.Inc() }
func (m *Metrics) PersonUpdated() { m.personsUpdated.Inc() }
func (m *Metrics) PersonDeleted() { m.personsDeleted.Inc() }

func (m *Metrics) CountriesAdded(n int) {
	if n > 0 {
		m.countriesAdded.Add(float64(n))
	}
}

func (m *Metrics) ReportGenerated(format string) {
	m.reports.WithLabelValues(format).Inc()
}

func (m *Metrics) ContactEventProcessed(eventType, outcome string) {
	m.eventsProcessed.WithLabelValues(eventType, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency by route template, so
// /persons/:id does not explode label cardinality. Errors are rendered here
// so the recorded status is the one the client receives.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.ContactsMetrics { return m },
	),
)

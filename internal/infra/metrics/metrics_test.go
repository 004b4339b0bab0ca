package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New()

	m.PersonCreated()
	m.PersonCreated()
	m.PersonUpdated()
	m.PersonDeleted()
	m.CountriesAdded(3)
	m.CountriesAdded(0)
	m.ReportGenerated("csv")
	m.ContactEventProcessed("person.created", "recorded")

	assert.InDelta(t, 2, testutil.ToFloat64(m.personsCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.personsUpdated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.personsDeleted), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.countriesAdded), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reports.WithLabelValues("csv")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsProcessed.WithLabelValues("person.created", "recorded")), 0)
}

func TestMetrics_MiddlewareRecordsRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/persons/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	for _, path := range []string{"/persons/1", "/persons/2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/persons/:id", "204")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/boom", "418")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PersonCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contacts_persons_created_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

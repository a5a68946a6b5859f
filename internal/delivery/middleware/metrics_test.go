package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courtcrowd/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics)
	e.GET("/courts/:id/occupancy", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/teapot", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	okCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/courts/:id/occupancy", "200")
	teapotCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")
	okBefore := testutil.ToFloat64(okCounter)
	teapotBefore := testutil.ToFloat64(teapotCounter)

	for _, target := range []string{"/courts/a/occupancy", "/courts/b/occupancy", "/teapot"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, okBefore+2, testutil.ToFloat64(okCounter), 1e-9)
	assert.InDelta(t, teapotBefore+1, testutil.ToFloat64(teapotCounter), 1e-9)
}

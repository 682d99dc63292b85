package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	e := newTestEcho()
	e.Use(Metrics(m))
	e.POST("/trigger", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	serve(e, httptest.NewRequest(http.MethodPost, "/trigger", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	serve(e, httptest.NewRequest("FOOBAR", "/trigger", nil))
	serve(e, httptest.NewRequest("BREW", "/does-not-exist", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	exposition := string(body)
	assert.Contains(t, exposition, `notify_trigger_http_requests_total{method="POST",path="/trigger",status="200"} 1`)
	assert.True(t, strings.Contains(exposition, `status="404"`), "매칭되지 않은 요청도 집계되어야 합니다")
	assert.Contains(t, exposition, `method="other"`)
	assert.NotContains(t, exposition, `method="FOOBAR"`, "표준이 아닌 메서드는 레이블로 기록되지 않아야 합니다")
	assert.NotContains(t, exposition, `method="BREW"`)
}

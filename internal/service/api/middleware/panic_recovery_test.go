package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	hook := captureLogs(t)

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "문자열 패닉", panicValue: "boom"},
		{name: "에러 패닉", panicValue: errors.New("nil pointer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := newTestEcho()
			e.Use(PanicRecovery())
			e.GET("/panic", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"내부 서버 오류가 발생했습니다"}`, rec.Body.String())

			var recovered *logrus.Entry
			for _, entry := range hook.AllEntries() {
				if entry.Message == "PANIC RECOVERED" {
					recovered = entry
				}
			}
			require.NotNil(t, recovered)
			assert.Equal(t, logrus.ErrorLevel, recovered.Level)
			assert.Equal(t, "api.middleware.panic_recovery", recovered.Data["component"])
			assert.NotEmpty(t, recovered.Data["stack"])
		})
	}
}

func TestPanicRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	e.Use(PanicRecovery())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

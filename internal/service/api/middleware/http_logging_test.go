package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "쿼리 없음", uri: "/trigger", expected: "/trigger"},
		{name: "민감 정보 없음", uri: "/trigger?id=100", expected: "/trigger?id=100"},
		{name: "app_key 마스킹", uri: "/trigger?app_key=secret123&id=100", expected: "/trigger?app_key=secr%2A%2A%2A&id=100"},
		{name: "짧은 값 마스킹", uri: "/health?token=abc", expected: "/health?token=%2A%2A%2A"},
		{name: "파싱 실패 시 원본 반환", uri: "%zz", expected: "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	hook := captureLogs(t)

	e := newTestEcho()
	e.Use(HTTPLogger())
	e.POST("/trigger", func(c echo.Context) error {
		return httputil.NewBadRequestError("workflowId and subscriberId are required")
	})

	req := httptest.NewRequest(http.MethodPost, "/trigger?app_key=secret123", nil)
	req.Header.Set("User-Agent", "test-agent")
	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "HTTP 요청", entry.Message)
	assert.Equal(t, "POST", entry.Data["method"])
	assert.Equal(t, "/trigger", entry.Data["path"])
	assert.Equal(t, "/trigger?app_key=secr%2A%2A%2A", entry.Data["uri"])
	assert.Equal(t, http.StatusBadRequest, entry.Data["status"], "에러 핸들러가 기록한 최종 상태 코드가 로깅되어야 합니다")
	assert.Equal(t, "test-agent", entry.Data["user_agent"])
	assert.Equal(t, "0", entry.Data["bytes_in"])
}

package trigger

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/config"
	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/service/api/auth"
	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
	"github.com/darkkaiser/notify-trigger/internal/service/api/trigger/handler"
	"github.com/darkkaiser/notify-trigger/internal/service/contract/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoutes(t *testing.T, apps ...config.ApplicationConfig) (*echo.Echo, *mocks.MockTriggerer) {
	t.Helper()

	triggerer := mocks.NewMockTriggerer(`{"id":"abc"}`)
	authenticator := auth.NewAuthenticator(&config.AppConfig{
		TriggerAPI: config.TriggerAPIConfig{Applications: apps},
	})

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	RegisterRoutes(e, handler.NewHandler(triggerer, metrics.New()), authenticator)

	return e, triggerer
}

func newTriggerRequest(headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/trigger", strings.NewReader(`{"workflowId":"welcome","subscriberId":"user-42"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e, _ := setupRoutes(t)

	found := false
	for _, r := range e.Routes() {
		if r.Path == "/trigger" && r.Method == http.MethodPost {
			found = true
		}
	}
	assert.True(t, found, "POST /trigger 라우트가 등록되어야 합니다")
}

func TestRegisterRoutes_WithoutApplications(t *testing.T) {
	t.Parallel()

	e, triggerer := setupRoutes(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newTriggerRequest(nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"abc"}}`, rec.Body.String())
	assert.Equal(t, 1, triggerer.CallCount())
}

func TestRegisterRoutes_WithApplications(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		headers      map[string]string
		expectedCode int
		expectCalled bool
	}{
		{
			name:         "성공: 올바른 인증 정보",
			headers:      map[string]string{"X-Application-Id": "billing", "X-App-Key": "billing-key"},
			expectedCode: http.StatusOK,
			expectCalled: true,
		},
		{
			name:         "실패: 인증 정보 없음",
			headers:      nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "실패: 잘못된 App Key",
			headers:      map[string]string{"X-Application-Id": "billing", "X-App-Key": "wrong"},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, triggerer := setupRoutes(t, config.ApplicationConfig{ID: "billing", AppKey: "billing-key"})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, newTriggerRequest(tt.headers))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectCalled {
				assert.Equal(t, 1, triggerer.CallCount())
			} else {
				assert.Equal(t, 0, triggerer.CallCount(), "인증에 실패하면 알림 공급자가 호출되지 않아야 합니다")
			}
		})
	}
}

func TestRegisterRoutes_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	e, _ := setupRoutes(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trigger", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/pkg/version"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/system"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	"github.com/darkkaiser/notify-trigger/internal/service/contract/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triggerOnly HealthChecker 를 구현하지 않는 Triggerer 입니다.
type triggerOnly struct{}

func (triggerOnly) Trigger(context.Context, contract.TriggerEvent) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func TestNewHandler_NilTriggerer(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgTriggererRequired, func() {
		NewHandler(nil, version.Info{})
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		triggerer         contract.Triggerer
		expectedStatus    string
		expectedDepStatus string
		expectedDepMsg    string
	}{
		{
			name:              "성공: 공급자 정상",
			triggerer:         mocks.NewMockTriggerer(`{}`),
			expectedStatus:    constants.HealthStatusHealthy,
			expectedDepStatus: constants.HealthStatusHealthy,
			expectedDepMsg:    constants.MsgDepStatusHealthy,
		},
		{
			name: "실패: 공급자 비정상",
			triggerer: &mocks.MockTriggerer{
				HealthError: errors.New("secret key가 설정되지 않았습니다"),
			},
			expectedStatus:    constants.HealthStatusUnhealthy,
			expectedDepStatus: constants.HealthStatusUnhealthy,
			expectedDepMsg:    "secret key가 설정되지 않았습니다",
		},
		{
			name:              "성공: 상태 확인 미지원 공급자",
			triggerer:         triggerOnly{},
			expectedStatus:    constants.HealthStatusHealthy,
			expectedDepStatus: constants.HealthStatusHealthy,
			expectedDepMsg:    constants.MsgDepStatusNotChecked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(tt.triggerer, version.Info{})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, h.HealthCheckHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))

			dep, ok := resp.Dependencies[constants.DependencyNotificationProvider]
			require.True(t, ok)
			assert.Equal(t, tt.expectedDepStatus, dep.Status)
			assert.Equal(t, tt.expectedDepMsg, dep.Message)
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	buildInfo := version.Info{
		Version:     "v1.2.0",
		Commit:      "f25b8bf",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "100",
		GoVersion:   "go1.24.0",
		OS:          "linux",
		Arch:        "amd64",
	}
	h := NewHandler(mocks.NewMockTriggerer(`{}`), buildInfo)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)

	require.NoError(t, h.VersionHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "f25b8bf",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "100",
		GoVersion:   "go1.24.0",
		Platform:    "linux/amd64",
	}, resp)
}

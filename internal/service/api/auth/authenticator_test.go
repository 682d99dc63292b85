package auth

import (
	"net/http"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/config"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(apps ...config.ApplicationConfig) *config.AppConfig {
	return &config.AppConfig{
		TriggerAPI: config.TriggerAPIConfig{
			Applications: apps,
		},
	}
}

func TestNewAuthenticator(t *testing.T) {
	t.Parallel()

	t.Run("애플리케이션 없음: 인증 비활성화", func(t *testing.T) {
		t.Parallel()

		a := NewAuthenticator(newTestAppConfig())
		assert.False(t, a.Enabled())
	})

	t.Run("애플리케이션 등록: 인증 활성화", func(t *testing.T) {
		t.Parallel()

		a := NewAuthenticator(newTestAppConfig(
			config.ApplicationConfig{ID: "app1", AppKey: "key1"},
			config.ApplicationConfig{ID: "app2", AppKey: "key2"},
		))
		assert.True(t, a.Enabled())
		assert.Len(t, a.applications, 2)
	})

	t.Run("nil 설정은 panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { NewAuthenticator(nil) })
	})
}

func TestAuthenticator_Authenticate(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator(newTestAppConfig(config.ApplicationConfig{
		ID:          "billing",
		Title:       "결제 서비스",
		Description: "결제 완료 알림",
		AppKey:      "valid-key",
	}))

	tests := []struct {
		name            string
		appID           string
		appKey          string
		expectedMessage string
	}{
		{name: "성공: 정상 키", appID: "billing", appKey: "valid-key"},
		{name: "실패: 등록되지 않은 ID", appID: "unknown", appKey: "valid-key", expectedMessage: "등록되지 않은 application_id입니다 (ID: unknown)"},
		{name: "실패: Key 불일치", appID: "billing", appKey: "invalid-key", expectedMessage: "app_key가 유효하지 않습니다 (application_id: billing)"},
		{name: "실패: 빈 Key", appID: "billing", appKey: "", expectedMessage: "app_key가 유효하지 않습니다 (application_id: billing)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, err := a.Authenticate(tt.appID, tt.appKey)
			if tt.expectedMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, "billing", app.ID)
				assert.Equal(t, "결제 서비스", app.Title)
				assert.Equal(t, "결제 완료 알림", app.Description)
				return
			}

			require.Error(t, err)
			assert.Nil(t, app)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
			assert.Equal(t, response.ErrorResponse{Error: tt.expectedMessage}, he.Message)
		})
	}
}

package middleware

import (
	"github.com/darkkaiser/notify-trigger/internal/service/api/auth"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication 애플리케이션 인증을 수행하는 미들웨어를 반환합니다.
//
// 처리 과정:
//  1. App Key 추출 (X-App-Key 헤더 우선, app_key 쿼리 파라미터 폴백)
//  2. Application ID 추출 (X-Application-Id 헤더)
//  3. Authenticator를 통한 인증
//  4. 인증된 Application 객체를 Context에 저장
//
// 인증 정보가 누락되었거나 일치하지 않으면 401 응답을 반환합니다.
// 등록된 애플리케이션이 없으면 인증 없이 다음 핸들러로 전달합니다.
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic(constants.PanicMsgAuthenticatorRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !authenticator.Enabled() {
			return next
		}

		return func(c echo.Context) error {
			appKey := extractAppKey(c)
			if appKey == "" {
				return ErrAppKeyRequired
			}

			applicationID := c.Request().Header.Get(constants.XApplicationID)
			if applicationID == "" {
				return ErrApplicationIDRequired
			}

			app, err := authenticator.Authenticate(applicationID, appKey)
			if err != nil {
				return err
			}

			auth.SetApplication(c, app)

			return next(c)
		}
	}
}

// extractAppKey X-App-Key 헤더를 우선으로 App Key를 추출합니다.
// 쿼리 파라미터로 전달된 경우 경고 로그를 남깁니다.
func extractAppKey(c echo.Context) string {
	appKey := c.Request().Header.Get(constants.XAppKey)
	if appKey != "" {
		return appKey
	}

	appKey = c.QueryParam(constants.AppKeyQuery)
	if appKey != "" {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"method":    c.Request().Method,
			"path":      c.Path(),
			"remote_ip": c.RealIP(),
		}).Warn("보안 경고: 쿼리 파라미터로 App Key 전달됨 (헤더 사용 권장)")
	}

	return appKey
}

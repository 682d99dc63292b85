// Package trigger 알림 트리거 엔드포인트(POST /trigger)의 라우트를 정의합니다.
//
// 등록된 애플리케이션이 있으면 인증 미들웨어로 요청을 검증하고,
// 없으면 인증 없이 공개됩니다.
package trigger

import (
	"github.com/darkkaiser/notify-trigger/internal/service/api/auth"
	"github.com/darkkaiser/notify-trigger/internal/service/api/middleware"
	"github.com/darkkaiser/notify-trigger/internal/service/api/trigger/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 알림 트리거 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	e.POST("/trigger", h.TriggerHandler, middleware.RequireAuthentication(authenticator))
}

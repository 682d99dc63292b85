// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/notify-trigger/internal/pkg/version"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/system"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	triggerer contract.Triggerer

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(triggerer contract.Triggerer, buildInfo version.Info) *Handler {
	if triggerer == nil {
		panic(constants.PanicMsgTriggererRequired)
	}

	return &Handler{
		triggerer: triggerer,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 알림 공급자 연동 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (notification_provider)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := map[string]system.DependencyStatus{
		constants.DependencyNotificationProvider: h.providerStatus(c),
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

func (h *Handler) providerStatus(c echo.Context) system.DependencyStatus {
	checker, ok := h.triggerer.(contract.HealthChecker)
	if !ok {
		return system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: constants.MsgDepStatusNotChecked,
		}
	}

	if err := checker.Health(c.Request().Context()); err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전, 실행 플랫폼을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}

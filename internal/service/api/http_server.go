package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/notify-trigger/internal/service/api/middleware"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge HSTS 헤더의 max-age 값 (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 개발 환경: ["*"] 또는 ["http://localhost:3000"]
	// 프로덕션 환경: 특정 도메인만 명시 (예: ["https://example.com"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	// 초과 시 요청 컨텍스트가 취소되고 503 응답을 반환합니다.
	RequestTimeout time.Duration

	// EnableHSTS TLS 서버로 동작할 때 Strict-Transport-Security 헤더 추가 여부
	EnableHSTS bool

	// RateLimitEnabled IP 기반 요청 속도 제한 적용 여부
	RateLimitEnabled bool

	// RateLimitPerSecond IP별 초당 허용 요청 수
	RateLimitPerSecond int

	// RateLimitBurst IP별 순간 최대 허용 요청 수
	RateLimitBurst int

	// Metrics HTTP 요청 지표를 수집할 레지스트리
	Metrics *metrics.Metrics
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 패닉 복구 및 로깅
//     - 가장 먼저 적용되어야 다른 미들웨어의 panic도 복구 가능
//
//  2. RequestID - 요청 ID 생성 (X-Request-ID 헤더, UUID)
//     - 로깅 미들웨어보다 먼저 적용되어야 로그에 request_id 포함 가능
//
//  3. ServerHeader - Server 헤더 제거
//
//  4. HTTPLogger - HTTP 요청/응답 로깅
//     - 민감 정보(app_key 등)는 마스킹
//     - 이후 미들웨어가 반환한 429/413/503 에러도 최종 상태 코드로 기록
//
//  5. Metrics - 라우트별 요청 수 집계
//
//  6. RateLimiting - IP 기반 요청 제한 (설정으로 활성화한 경우에만)
//
//  7. BodyLimit - 요청 본문 크기 제한 (기본: 2MB, 초과 시 413 응답)
//
//  8. ContextTimeout - 요청 처리 시간 제한 (기본: 60초)
//     - 요청 컨텍스트에 기한을 설정하므로 알림 공급자 호출도 함께 취소됩니다.
//     - 핸들러가 context.DeadlineExceeded 를 그대로 반환한 경우에만 503 으로 변환합니다.
//
//  9. CORS - Cross-Origin Resource Sharing
//
//  10. Secure - 보안 헤더 설정 (TLS 서버이면 HSTS 포함)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	if cfg.Metrics == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. 요청 지표 수집
	e.Use(appmiddleware.Metrics(cfg.Metrics))
	// 6. Rate Limiting
	if cfg.RateLimitEnabled {
		e.Use(appmiddleware.RateLimiting(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}
	// 7. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 8. Timeout
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
			}
			return err
		},
	}))
	// 9. CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			constants.XAppKey,
			constants.XApplicationID,
		},
	}))
	// 10. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

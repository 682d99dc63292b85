// Package constants API 서비스에서 공유하는 컴포넌트 이름, 헤더 키, 메시지 상수를 정의합니다.
package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHandler 핸들러 컴포넌트 이름
	ComponentHandler = "api.handler"

	// ComponentTriggerHandler 트리거 핸들러 컴포넌트 이름
	ComponentTriggerHandler = "api.handler.trigger"

	// ComponentMiddlewareAuthentication 인증 미들웨어 컴포넌트 이름
	ComponentMiddlewareAuthentication = "api.middleware.auth"

	// ComponentMiddlewareRateLimit 속도 제한 미들웨어 컴포넌트 이름
	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	// ComponentMiddlewarePanicRecovery 패닉 복구 미들웨어 컴포넌트 이름
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	// ComponentMiddlewareHTTPLogger HTTP 로깅 미들웨어 컴포넌트 이름
	ComponentMiddlewareHTTPLogger = "api.middleware.http_logger"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)

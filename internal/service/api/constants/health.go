package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyNotificationProvider 외부 의존성 ID: 알림 공급자
	DependencyNotificationProvider = "notification_provider"

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"

	// MsgDepStatusNotChecked 외부 의존성 상태: 상태 확인을 지원하지 않음
	MsgDepStatusNotChecked = "상태 확인을 지원하지 않음"
)

package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	// AppKeyQuery 애플리케이션 인증용 쿼리 파라미터 키 (헤더를 보낼 수 없는 클라이언트용)
	AppKeyQuery = "app_key"
)

// HTTP 헤더 키 상수입니다.
const (
	// XAppKey 애플리케이션 인증용 HTTP 헤더 키
	XAppKey = "X-App-Key"

	// XApplicationID 애플리케이션 식별용 HTTP 헤더 키
	XApplicationID = "X-Application-Id"
)

// Context 키 상수입니다.
const (
	// ContextKeyApplication 인증된 Application 객체 저장용 Context 키
	ContextKeyApplication = "authenticated_application"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	AppKeyQuery,
	"api_key",
	"password",
	"token",
	"secret",
}

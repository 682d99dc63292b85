// Package domain API 서비스의 런타임 도메인 모델을 정의합니다.
package domain

// Application 트리거 API를 호출하는 클라이언트 애플리케이션입니다.
//
// config.ApplicationConfig 에서 AppKey 를 제외한 런타임 표현으로, 인증 후 핸들러와 로그에서 사용됩니다.
// AppKey 는 Authenticator 에서 SHA-256 해시 형태로만 보관합니다.
type Application struct {
	ID          string
	Title       string
	Description string
}

package errors

import "strconv"

// ErrorType 애플리케이션 에러를 분류하는 종류 값입니다.
//
// HTTP 계층은 이 값을 기준으로 응답 상태 코드를 고르고, 로그 계층은 심각도를 고릅니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 애플리케이션 내부 로직의 결함
	Internal

	// System 파일, 네트워크 등 실행 환경에서 발생한 에러
	System

	// Unauthorized 인증 실패 (API 키 누락 또는 불일치)
	Unauthorized

	// Forbidden 인증은 되었으나 권한이 없는 요청
	Forbidden

	// InvalidInput 호출자가 전달한 값 또는 설정값이 올바르지 않음
	InvalidInput

	// Conflict 현재 상태와 충돌하는 요청
	Conflict

	// NotFound 대상을 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 호출이 수행되었으나 실패 응답을 받음
	ExecutionFailed

	// ParsingFailed 응답 또는 입력 데이터의 해석 실패
	ParsingFailed

	// Timeout 제한 시간 초과
	Timeout

	// Unavailable 외부 서비스를 일시적으로 사용할 수 없음 (5xx, 429, 연결 실패)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}

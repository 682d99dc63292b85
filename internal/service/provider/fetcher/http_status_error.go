package fetcher

import (
	"fmt"
	"net/http"
)

// HTTPStatusError 허용되지 않은 상태 코드를 받았을 때 반환되는 구조화된 에러입니다.
//
//	var httpErr *HTTPStatusError
//	if errors.As(err, &httpErr) {
//	    log.Warn("공급자 응답 실패", "status", httpErr.StatusCode, "body", httpErr.BodySnippet)
//	}
//
// Cause 에는 상태 코드에 대응하는 apperrors.AppError 가 담기므로 apperrors.Is 로 종류를 판별할 수 있습니다.
type HTTPStatusError struct {
	// StatusCode 서버가 반환한 HTTP 상태 코드
	StatusCode int

	// Status 상태 코드의 텍스트 표현 (예: "404 Not Found")
	Status string

	// URL 요청 URL (민감 정보 마스킹됨)
	URL string

	// Header 응답 헤더 (민감 헤더 마스킹됨)
	Header http.Header

	// BodySnippet 응답 본문의 앞부분 (최대 4KB)
	BodySnippet string

	// Cause 상태 코드에 대응하는 도메인 에러
	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

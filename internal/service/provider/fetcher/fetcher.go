// Package fetcher 외부 HTTP API 호출에 사용하는 Fetcher 인터페이스와 데코레이터 체인을 제공합니다.
//
// 체인은 바깥쪽부터 LoggingFetcher → StatusCodeFetcher → MaxBytesFetcher → HTTPFetcher 순서로 조립되며,
// 재시도는 수행하지 않습니다.
package fetcher

import (
	"net/http"
	"time"
)

// component 로깅용 컴포넌트 이름
const component = "provider.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - 에러가 발생해도 응답 객체가 nil이 아닐 수 있습니다.
//   - Context 취소 시 즉시 요청을 중단해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config 체인 조립에 필요한 설정값
type Config struct {
	// Timeout 요청 하나의 전체 제한 시간 (0 이하이면 defaultTimeout)
	Timeout time.Duration

	// MaxResponseBytes 응답 본문의 최대 크기 (0 이하이면 defaultMaxBytes, NoLimit 이면 제한 없음)
	MaxResponseBytes int64

	// UserAgent 요청에 User-Agent 헤더가 없을 때 사용할 값
	UserAgent string
}

// New 설정에 따라 데코레이터 체인을 조립하여 반환합니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout, cfg.UserAgent)
	f = NewMaxBytesFetcher(f, cfg.MaxResponseBytes)
	f = NewStatusCodeFetcher(f)
	return NewLoggingFetcher(f)
}

package fetcher

import (
	"net"
	"net/http"
	"time"
)

const (
	// defaultTimeout 요청 하나의 기본 제한 시간
	defaultTimeout = 30 * time.Second

	// DefaultUserAgent 요청에 User-Agent 헤더가 없을 때 사용하는 기본값
	DefaultUserAgent = "notify-trigger"
)

// HTTPFetcher 타임아웃과 User-Agent 자동 설정이 내장된 HTTP 클라이언트 구현체입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

// Do HTTP 요청을 실행합니다.
// 요청 헤더에 User-Agent가 없는 경우 기본값을 추가합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

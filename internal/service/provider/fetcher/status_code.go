package fetcher

import (
	"net/http"
)

// StatusCodeFetcher HTTP 응답의 상태 코드를 검증하는 미들웨어입니다.
//
// 2xx 가 아닌 상태 코드를 받으면 응답 Body를 정리하고 HTTPStatusError 를 반환합니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 2xx 응답만 허용하는 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate: delegate,
	}
}

// Do HTTP 요청을 수행하고 응답 상태 코드를 검증합니다.
//
// 주의사항:
//   - 에러 발생 시 응답 객체의 Body는 내부에서 정리되고 nil Response 가 반환됩니다.
//   - 성공 시에는 호출자가 반드시 응답 객체의 Body를 닫아야 합니다.
func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if statusErr := checkResponseStatus(resp); statusErr != nil {
		drainAndCloseBody(resp.Body)

		return nil, statusErr
	}

	return resp, nil
}

package fetcher

import (
	"errors"
	"io"
	"net/http"
)

const (
	// defaultMaxBytes 응답 본문의 기본 크기 제한값입니다 (1MB).
	defaultMaxBytes = 1 << 20

	// NoLimit 응답 본문에 대한 크기 제한을 적용하지 않음을 나타내는 특수 상수입니다.
	NoLimit = -1
)

// maxBytesReader http.MaxBytesReader 의 에러를 apperrors 형식으로 바꿔주는 래퍼입니다.
type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (n int, err error) {
	n, err = r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, NewErrResponseBodyTooLarge(r.limit)
		}
	}

	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher HTTP 응답 본문의 크기를 제한하는 미들웨어입니다.
//
// Content-Length 헤더로 먼저 차단하고, 헤더가 없거나 조작된 응답은 실제 읽기 시점에 차단합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher 새로운 MaxBytesFetcher 인스턴스를 생성합니다.
// limit 이 NoLimit 이면 delegate 를 그대로 반환합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = defaultMaxBytes
	}

	return &MaxBytesFetcher{
		delegate: delegate,
		limit:    limit,
	}
}

// Do HTTP 요청을 수행하고, 응답 본문에 크기 제한을 적용합니다.
// 반환된 응답의 Body는 호출자가 닫아야 하며, 읽는 도중 제한 초과 에러가 발생할 수 있습니다.
func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)

		return nil, NewErrResponseBodyTooLargeByContentLength(resp.ContentLength, f.limit)
	}

	if resp.Body != nil {
		resp.Body = &maxBytesReader{
			rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
			limit: f.limit,
		}
	}

	return resp, nil
}

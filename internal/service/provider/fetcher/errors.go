package fetcher

import (
	"fmt"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
)

// ErrResponseBodyTooLarge 응답 본문이 허용된 최대 크기를 초과했을 때 반환됩니다.
var ErrResponseBodyTooLarge = apperrors.New(apperrors.ExecutionFailed, "응답 본문의 크기가 허용된 최대 크기를 초과하였습니다")

// NewErrResponseBodyTooLarge 본문을 읽는 도중 제한을 초과했을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.ExecutionFailed, "응답 본문의 크기가 제한(%d 바이트)을 초과하였습니다", limit)
}

// NewErrResponseBodyTooLargeByContentLength Content-Length 헤더만으로 제한 초과가 확인된 경우의 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.ExecutionFailed, "응답 본문의 크기(Content-Length: %d 바이트)가 제한(%d 바이트)을 초과하였습니다", contentLength, limit)
}

func newErrHTTPStatus(errType apperrors.ErrorType, status, url string) error {
	if url == "" {
		return apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. (상태 코드: %s)", status))
	}
	return apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. (상태 코드: %s, URL: %s)", status, url))
}

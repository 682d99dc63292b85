package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
)

var (
	// ErrAppKeyRequired App Key가 누락되었을 때 반환하는 401 에러입니다.
	ErrAppKeyRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthAppKeyRequired)

	// ErrApplicationIDRequired Application ID가 누락되었을 때 반환하는 401 에러입니다.
	ErrApplicationIDRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthApplicationIDRequired)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과했을 때 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)

// NewErrPanicRecovered 캡처된 패닉 값을 Internal 에러로 래핑합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "요청 처리 중 패닉이 발생하였습니다")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("요청 처리 중 패닉이 발생하였습니다: %v", r))
}

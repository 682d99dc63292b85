package auth

import (
	"errors"
	"fmt"

	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
)

var (
	// ErrApplicationMissingInContext Context 에 인증된 애플리케이션 정보가 없을 때 반환됩니다.
	ErrApplicationMissingInContext = errors.New("Context에서 애플리케이션 정보를 찾을 수 없습니다")

	// ErrApplicationTypeMismatch Context 에 저장된 값이 *domain.Application 이 아닐 때 반환됩니다.
	ErrApplicationTypeMismatch = errors.New("Context에 저장된 애플리케이션 정보의 타입이 올바르지 않습니다")
)

// NewErrInvalidApplicationID 등록되지 않은 Application ID 에 대한 401 에러를 생성합니다.
func NewErrInvalidApplicationID(id string) error {
	return httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedNotFoundApplicationID, id))
}

// NewErrInvalidAppKey App Key 불일치에 대한 401 에러를 생성합니다.
func NewErrInvalidAppKey(id string) error {
	return httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedInvalidAppKey, id))
}

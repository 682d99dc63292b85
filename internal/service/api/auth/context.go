package auth

import (
	"fmt"

	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/domain"
	"github.com/labstack/echo/v4"
)

// SetApplication 인증된 애플리케이션 정보를 Context에 저장합니다.
func SetApplication(c echo.Context, app *domain.Application) {
	c.Set(constants.ContextKeyApplication, app)
}

// GetApplication Context에서 애플리케이션 정보를 조회합니다.
func GetApplication(c echo.Context) (*domain.Application, error) {
	val := c.Get(constants.ContextKeyApplication)
	if val == nil {
		return nil, ErrApplicationMissingInContext
	}

	app, ok := val.(*domain.Application)
	if !ok {
		return nil, ErrApplicationTypeMismatch
	}

	return app, nil
}

// MustGetApplication 인증 미들웨어를 통과한 요청에서 애플리케이션 정보를 조회합니다. 실패하면 panic 이 발생합니다.
func MustGetApplication(c echo.Context) *domain.Application {
	app, err := GetApplication(c)
	if err != nil {
		panic(fmt.Sprintf(constants.PanicMsgAuthContextApplicationNotFound, err))
	}
	return app
}

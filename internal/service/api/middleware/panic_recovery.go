package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic 을 복구하여 스택 트레이스와 함께 로깅하고,
// 에러 핸들러를 통해 500 응답을 반환하는 미들웨어입니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// 클라이언트 연결 종료로 인한 응답 중단은 복구하지 않습니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := NewErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error("PANIC RECOVERED")

				returnErr = err
			}()

			return next(c)
		}
	}
}

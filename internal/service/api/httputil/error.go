package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/domain"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/response"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {"error": "<message>"} 형식으로 응답합니다. 5xx는 Error, 4xx는 Warn 레벨로 기록하며,
// 프레임워크가 만든 에러(404, 405, 413 등)의 영문 메시지는 고정된 한국어 메시지로 바꿉니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case response.ErrorResponse:
			message = msg.Error
		case string:
			message = frameworkMessage(code, msg)
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if app, ok := c.Get(constants.ContextKeyApplication).(*domain.Application); ok {
		fields["application_id"] = app.ID
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{Error: message})
}

// frameworkMessage Echo 가 문자열 메시지로 만든 에러를 응답 메시지로 변환합니다.
func frameworkMessage(code int, msg string) string {
	switch code {
	case http.StatusNotFound:
		return constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		return constants.ErrMsgMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return constants.ErrMsgRequestEntityTooLarge
	case http.StatusUnsupportedMediaType:
		return constants.ErrMsgUnsupportedMediaType
	case http.StatusTooManyRequests:
		return constants.ErrMsgTooManyRequests
	case http.StatusServiceUnavailable:
		return constants.ErrMsgServiceUnavailable
	case http.StatusInternalServerError:
		return constants.ErrMsgInternalServer
	}
	if msg == "" {
		return http.StatusText(code)
	}
	return msg
}

package middleware

import (
	"net/http"

	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/labstack/echo/v4"
)

const (
	// unmatchedRoute 등록된 라우트가 없는 요청의 path 레이블 값
	unmatchedRoute = "unmatched"

	// otherMethod 표준 HTTP 메서드가 아닌 요청의 method 레이블 값
	otherMethod = "other"
)

// knownMethods method 레이블에 그대로 기록하는 HTTP 메서드 목록
var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Metrics HTTP 요청 수를 메서드, 라우트 패턴, 상태 코드별로 집계하는 미들웨어입니다.
//
// path 레이블에는 실제 URL 대신 라우트 패턴을, method 레이블에는 표준 메서드 또는 "other" 를 기록하여
// 레이블 카디널리티를 제한합니다.
// HTTPLogger 뒤에 위치하므로 에러 응답의 최종 상태 코드가 기록됩니다.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" || path == "/*" {
				path = unmatchedRoute
			}

			method := c.Request().Method
			if _, ok := knownMethods[method]; !ok {
				method = otherMethod
			}

			m.ObserveHTTPRequest(method, path, c.Response().Status)

			return nil
		}
	}
}

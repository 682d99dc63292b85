package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/darkkaiser/notify-trigger/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없는 경우 bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 에러는 이 미들웨어에서 c.Error 로 처리하므로, 로그에는 최종 응답 상태 코드가 기록됩니다.
// app_key 같은 민감한 쿼리 파라미터는 마스킹됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = defaultBytesIn
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
				"method":   req.Method,
				"path":     path,
				"uri":      maskSensitiveQueryParams(req.RequestURI),
				"host":     req.Host,
				"protocol": req.Proto,

				"remote_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),

				"status":    res.Status,
				"bytes_in":  bytesIn,
				"bytes_out": strconv.FormatInt(res.Size, 10),

				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),

				"request_id": res.Header().Get(echo.HeaderXRequestID),
			}).Info("HTTP 요청")

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다. 파싱에 실패하면 원본을 반환합니다.
//
//	"/trigger?app_key=secret123&id=100" → "/trigger?app_key=secr%2A%2A%2A&id=100"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}

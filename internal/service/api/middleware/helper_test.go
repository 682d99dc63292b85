package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// captureLogs 테스트 동안 전역 로거에 기록된 로그를 캡처합니다.
// 전역 로거를 사용하므로 이 함수를 사용하는 테스트는 t.Parallel() 을 사용하지 않습니다.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	originalLevel := logrus.GetLevel()
	hook := test.NewGlobal()
	logrus.SetLevel(logrus.DebugLevel)

	t.Cleanup(func() {
		logrus.SetLevel(originalLevel)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	return hook
}

// newTestEcho 전역 에러 핸들러가 설정된 Echo 인스턴스를 생성합니다.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

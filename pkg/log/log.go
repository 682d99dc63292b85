// Package log 애플리케이션 전역 로거(logrus)를 감싸는 패키지입니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent 계열 함수를 사용합니다.
//
//	applog.WithComponentAndFields("api.handler", applog.Fields{"workflow_id": id}).Info("알림 트리거 요청")
package log

import "github.com/sirupsen/logrus"

// StandardLogger 전역 Logger 를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields 주어진 필드를 포함한 Entry 를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 Entry 를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 Entry 를 반환합니다.
// fields 에 component 키가 있더라도 인자로 받은 component 가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

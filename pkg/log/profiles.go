package log

const callerPathPrefix = "github.com/darkkaiser/notify-trigger"

// NewProductionOptions 운영 환경용 로그 옵션을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 옵션을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

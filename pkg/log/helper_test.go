package log

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetForTest Setup 의 sync.Once 와 logrus 전역 상태를 초기화합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	setupCloser = nil
	setupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

package log

import "github.com/sirupsen/logrus"

// Level logrus.Level 의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels 의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields    = logrus.Fields
	Entry     = logrus.Entry
	Logger    = logrus.Logger
	Formatter = logrus.Formatter
)

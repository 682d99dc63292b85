package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		logrusLevel   logrus.Level
		expectedLevel log.Lvl
	}{
		{logrus.DebugLevel, log.DEBUG},
		{logrus.InfoLevel, log.INFO},
		{logrus.WarnLevel, log.WARN},
		{logrus.ErrorLevel, log.ERROR},
		{logrus.TraceLevel, log.OFF},
		{logrus.FatalLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.logrusLevel.String(), func(t *testing.T) {
			t.Parallel()

			l := logrus.New()
			l.SetLevel(tt.logrusLevel)
			assert.Equal(t, tt.expectedLevel, Logger{l}.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		inputLevel    log.Lvl
		expectedLevel logrus.Level
	}{
		{log.DEBUG, logrus.DebugLevel},
		{log.INFO, logrus.InfoLevel},
		{log.WARN, logrus.WarnLevel},
		{log.ERROR, logrus.ErrorLevel},
		{log.OFF, logrus.InfoLevel},
	}

	for _, tt := range tests {
		l := logrus.New()
		Logger{l}.SetLevel(tt.inputLevel)
		assert.Equal(t, tt.expectedLevel, l.GetLevel())
	}
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logrus.New()
	adapter := Logger{l}

	adapter.SetOutput(buf)
	assert.Same(t, buf, adapter.Output())

	adapter.Infoj(log.JSON{"route": "/trigger"})
	adapter.Warnf("경고 %d", 1)

	assert.Contains(t, buf.String(), "route=/trigger")
	assert.Contains(t, buf.String(), "경고 1")
	assert.Empty(t, adapter.Prefix())
}

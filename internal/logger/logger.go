package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	Info  = newLogger(os.Stdout, logrus.InfoLevel)
	Error = newLogger(os.Stderr, logrus.ErrorLevel)
)

func newLogger(out *os.File, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return l
}

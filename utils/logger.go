package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InfoLogger carries request and domain events; ErrorLogger only failures.
// Report failures with ErrorLogger.Errorf or .Error: its level is Error, so
// Print-family calls (logged at Info) are filtered out.
var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(level)
	return l
}

// InitLogger sends events to stdout and errors to stderr.
func InitLogger() {
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
}

// SetLogLevel applies a textual level ("debug", "info", ...) to InfoLogger.
// Unknown levels leave the current level untouched.
func SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		ErrorLogger.Errorf("Unknown log level %q, keeping %s", level, InfoLogger.GetLevel())
		return
	}
	InfoLogger.SetLevel(lvl)
}

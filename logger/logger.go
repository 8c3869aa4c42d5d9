// Package logger owns the process-wide logrus instance.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log. Empty level/format fall back to LOG_LEVEL and
// LOG_FORMAT, then to "info" and "text".
func Init(level, format string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	Log.SetOutput(os.Stdout)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init so tests and headless
// tools never hit a nil logger.
var Log = logrus.New()

// Init configures Log. Empty level or format fall back to the LOG_LEVEL and
// LOG_FORMAT environment variables, then to "info" and "text".
func Init(level, format string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence discards all output. Headless reports use it so the printed report
// is the only thing on stdout.
func Silence() {
	Log.SetOutput(io.Discard)
}

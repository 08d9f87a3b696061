// Package logger constructs the application logger.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to out. Unrecognized levels fall back
// to info. Format "json" selects the JSON formatter; anything else gets the
// text formatter with full timestamps.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	log.SetOutput(out)
	return log
}

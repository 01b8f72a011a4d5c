// Package logging configures the application logger.
package logging

import (
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/sirupsen/logrus"
)

// New builds a JSON logger. Level comes from LOG_LEVEL (default info).
// When LOGSTASH_ADDR is set, entries are also shipped to logstash over TCP;
// a failed dial is logged and skipped rather than fatal.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if addr := os.Getenv("LOGSTASH_ADDR"); addr != "" {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			logger.WithError(err).Warn("Could not connect to logstash")
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": "yatube"}))
			logger.Hooks.Add(hook)
		}
	}
	return logger
}

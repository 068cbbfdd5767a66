// Package logging builds the structured logger shared by the parkspot
// commands.
//
// Logs always go to a side channel (stderr in the binaries); stdout carries
// nothing but the JSON payload.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to out at the named level ("debug",
// "info", "warn", ...). Unknown names fall back to DefaultLevel.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.Formatter = &logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	log.Level = ParseLevel(level)
	return log
}

// ParseLevel converts a level name to a logrus level.
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return DefaultLevel
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the level and format of a logger. Empty fields fall back
// to "info" and "text".
type Options struct {
	Level  string
	Format string // "text" or "json"
	Out    io.Writer
}

// FromEnv overrides opts with LOG_LEVEL and LOG_FORMAT when they are set.
func FromEnv(opts Options) Options {
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok && lvl != "" {
		opts.Level = lvl
	}
	if format, ok := os.LookupEnv("LOG_FORMAT"); ok && format != "" {
		opts.Format = format
	}
	return opts
}

// New builds a logrus logger from opts. An unparseable level means info.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *logrus.Logger {
	return New(Options{Level: "panic", Out: io.Discard})
}

// Package logger builds the process logger and carries request-scoped
// loggers through a context.Context.
package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/SampleSite/SampleSite-Backend/src/config"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// New creates a logger configured from cfg.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

// WithContext returns a copy of ctx carrying log.
func WithContext(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in ctx, or one that discards everything.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if log, ok := ctx.Value(contextKey{}).(logrus.FieldLogger); ok {
		return log
	}
	return discard
}

// Package logging provides the CLI's structured logger: a zap logger
// tagged with a per-invocation correlation id, falling back to a
// no-op logger when construction fails rather than ever failing a
// parse over missing diagnostics.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a zap logger carrying a fresh correlation id field, for
// CLI verbose/debug output. verbose selects
// between zap's development and a quieter production-ish config.
func New(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error

	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		cfg.Encoding = "console"
		logger, err = cfg.Build()
	}
	if err != nil {
		logger = zap.NewNop()
	}

	return logger.With(zap.String("correlation_id", uuid.New().String()))
}

// Package logging builds the zap logger shared by the server components.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/recipebox/backend/config"
)

// New returns a JSON production logger, or a console logger outside
// production. level is one of debug, info, warn, error.
func New(env config.Environment, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	if !env.IsProduction() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("env", env.String())), nil
}

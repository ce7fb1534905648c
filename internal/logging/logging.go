// Package logging builds the structured logger of the command-line tools.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains all logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the default level of the environment, e.g. "warn".
	Level string
	// OutputPaths overrides the default output of the environment profile.
	OutputPaths []string
}

// New builds a JSON logger for cfg.
// Development and local environments log at debug level, production
// at info level.
func New(cfg Config) (*zap.Logger, error) {
	zc, err := cfg.zapConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

func (c Config) zapConfig() (zap.Config, error) {
	var zc zap.Config
	switch c.Environment {
	case EnvironmentProduction:
		zc = zap.NewProductionConfig()
	case EnvironmentDevelopment, EnvironmentLocal:
		zc = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("invalid environment %q", c.Environment)
	}
	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid level %q: %w", c.Level, err)
		}
		zc.Level = level
	}
	zc.Encoding = "json"
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.DisableStacktrace = true
	if len(c.OutputPaths) > 0 {
		zc.OutputPaths = c.OutputPaths
	}
	return zc, nil
}

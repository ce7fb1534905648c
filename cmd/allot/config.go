package main

import (
	"strings"

	"github.com/govalues/exact/internal/logging"
)

const (
	envEnvironment = "ALLOT_ENV"
	envLogLevel    = "ALLOT_LOG_LEVEL"
)

// config is the process configuration read from the environment.
type config struct {
	Environment logging.Environment
	LogLevel    string
}

// loadConfig reads the configuration with getenv, usually [os.Getenv].
// An unset environment defaults to production.
func loadConfig(getenv func(string) string) config {
	cfg := config{
		Environment: logging.EnvironmentProduction,
		LogLevel:    strings.TrimSpace(getenv(envLogLevel)),
	}
	if env := strings.TrimSpace(getenv(envEnvironment)); env != "" {
		cfg.Environment = logging.Environment(strings.ToLower(env))
	}
	return cfg
}

func (c config) logging() logging.Config {
	return logging.Config{
		Environment: c.Environment,
		Level:       c.LogLevel,
		OutputPaths: []string{"stderr"},
	}
}

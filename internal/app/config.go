package app

import (
	"os"
	"strings"

	"ocean-clock/internal/logger"

	"github.com/rs/zerolog"
)

// Config only tunes diagnostics. The clock itself takes no configuration.
type Config struct {
	LogLevel zerolog.Level
	JSONLogs bool
}

func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.InfoLevel,
		JSONLogs: false,
	}
}

func ConfigFromEnv() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	config := DefaultConfig()

	if getenv("DEBUG") == "1" {
		config.LogLevel = zerolog.DebugLevel
	}

	if raw := strings.TrimSpace(getenv("OCEAN_CLOCK_LOG_LEVEL")); raw != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			config.LogLevel = level
		}
	}

	if getenv("OCEAN_CLOCK_JSON_LOGS") == "true" {
		config.JSONLogs = true
	}

	return config
}

func (c Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}

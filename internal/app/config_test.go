package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{"defaults", nil, Config{LogLevel: zerolog.InfoLevel}},
		{"debug shortcut", map[string]string{"DEBUG": "1"}, Config{LogLevel: zerolog.DebugLevel}},
		{"explicit level", map[string]string{"OCEAN_CLOCK_LOG_LEVEL": "WARN"}, Config{LogLevel: zerolog.WarnLevel}},
		{"explicit level wins", map[string]string{"DEBUG": "1", "OCEAN_CLOCK_LOG_LEVEL": "error"}, Config{LogLevel: zerolog.ErrorLevel}},
		{"bad level ignored", map[string]string{"OCEAN_CLOCK_LOG_LEVEL": "loud"}, Config{LogLevel: zerolog.InfoLevel}},
		{"json", map[string]string{"OCEAN_CLOCK_JSON_LOGS": "true"}, Config{LogLevel: zerolog.InfoLevel, JSONLogs: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loadConfig(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OCEAN_CLOCK_LOG_LEVEL", "debug")
	t.Setenv("OCEAN_CLOCK_JSON_LOGS", "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.NotNil(t, cfg.NewLogger())
	assert.NotNil(t, DefaultConfig().NewLogger())
}

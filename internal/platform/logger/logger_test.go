package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/flashforge-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level       string
		debugOn     bool
		infoEnabled bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"DEBUG", true, true}, // case-insensitive
		{"bogus", false, true}, // falls back to info
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tc.debugOn, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.infoEnabled, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	assert.Equal(t, log, slog.Default())
}

package logging_test

import (
	"testing"

	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "loud"}, zapcore.InfoLevel},
		{config.LoggingConfig{}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		logger, err := logging.New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.want), "level %q", tt.cfg.Level)
		assert.False(t, logger.Core().Enabled(tt.want-1), "level %q", tt.cfg.Level)
	}
}

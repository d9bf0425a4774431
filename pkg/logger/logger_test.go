package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults to JSON at info", func(t *testing.T) {
		cfg := newConfig("", "")
		assert.Equal(t, "json", cfg.Encoding)
		assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
		assert.Equal(t, "ts", cfg.EncoderConfig.TimeKey)
	})

	t.Run("Level and console format", func(t *testing.T) {
		cfg := newConfig("debug", "console")
		assert.Equal(t, "console", cfg.Encoding)
		assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
		assert.Nil(t, cfg.Sampling)
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		cfg := newConfig("chatty", "")
		assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	})
}

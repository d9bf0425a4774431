package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every entry as the "service" field.
const ServiceName = "classroom-market"

var L *zap.Logger

func init() {
	var err error
	L, err = newConfig(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")).Build(
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", ServiceName)),
	)
	if err != nil {
		panic(err)
	}
}

// newConfig returns the production JSON config, or a colored console config
// when format is "console". An unknown level falls back to info.
func newConfig(level, format string) zap.Config {
	lvl := zapcore.InfoLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	config := zap.NewProductionConfig()
	if format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.Sampling = nil
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config
}

// WithComponent returns a logger tagged with the component name (handler, service, mq, ...).
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// Sync flushes buffered entries; call it before the process exits.
func Sync() {
	_ = L.Sync()
}

package logger

import (
	"fmt"
	"food-rescue-dashboard/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from config. Development environments get the
// development encoder settings and colored levels on the console encoder.
func New(appEnv string, cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("new logger: parse level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if appEnv == "development" {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = cfg.DisableCaller
	zc.DisableStacktrace = cfg.DisableStacktrace
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch cfg.Encoding {
	case "json":
		zc.Encoding = "json"
	case "console", "":
		zc.Encoding = "console"
		if appEnv == "development" {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	default:
		return nil, fmt.Errorf("new logger: unknown encoding %q", cfg.Encoding)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("new logger: build: %w", err)
	}
	return l, nil
}

// Package diag builds the zap logger shared by the gophx commands.
//
// Results go to stdout; everything logged here goes to stderr. The logger
// is configured from the environment only, since the commands take no
// flags.
package diag

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel  = "GOPHX_LOG_LEVEL"
	EnvLogFormat = "GOPHX_LOG_FORMAT"
)

type Config struct {
	Level  zapcore.Level
	Format string // "console" or "json"
}

// ConfigFromEnv reads the logger settings through lookup, usually
// os.LookupEnv. Unset variables keep their defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Level: zapcore.InfoLevel, Format: "console"}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.Level = lvl
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		switch v {
		case "console", "json":
			cfg.Format = v
		default:
			return Config{}, fmt.Errorf("%s: unsupported format %q", EnvLogFormat, v)
		}
	}
	return cfg, nil
}

// NewLogger builds a stderr logger from cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level)
	zc.Encoding = cfg.Format
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	if cfg.Format == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

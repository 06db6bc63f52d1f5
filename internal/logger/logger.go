package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"atomikwiz/internal/config"
)

// New builds the CLI logger. It discards everything unless verbose logging
// is enabled; production uses JSON lines, anything else the console format.
func New(cfg *config.Config, w io.Writer) *zap.Logger {
	if cfg == nil || !cfg.Verbose || w == nil {
		return zap.NewNop()
	}

	if cfg.Env == config.EnvProduction {
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.InfoLevel))
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel), zap.Development())
}

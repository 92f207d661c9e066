package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger so callers don't import zap everywhere.
type Logger struct {
	*zap.SugaredLogger
}

// L is the process-wide logger. Handlers receive it implicitly through
// this package; it is also safe to use from init-order-sensitive code
// because it is assigned in init below.
var L *Logger

// New builds a production JSON logger with ISO-8601 timestamps.
func New() (*Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

func init() {
	L, _ = New()
}

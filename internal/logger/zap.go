package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// serviceName is attached to every entry.
const serviceName = "thermostat-dashboard"

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// toZapLevel parses a level name case-insensitively. Unknown names mean info.
func toZapLevel(levelStr string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(levelStr)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// newConsoleCore writes human-readable lines with RFC3339 timestamps to stderr.
func newConsoleCore(level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
}

func newZapLogger(levelStr string) *Logger {
	l := zap.New(newConsoleCore(toZapLevel(levelStr)),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.DPanicLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
	return &Logger{SugaredLogger: l.Sugar()}
}

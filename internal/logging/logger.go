package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger and installs it as zap's global logger.
func New(level, env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

// WithRequestID stores the request ID in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID stored by WithRequestID.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request-scoped structured logging for services
type Logger struct {
	l *zap.Logger
}

// FromContext creates a logger tagged with the request ID carried by ctx
func FromContext(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{l: zap.L().With(zap.String("request_id", requestID))}
}

// Zap exposes the underlying logger for callers that need typed fields.
func (l *Logger) Zap() *zap.Logger {
	return l.l
}

func (l *Logger) LogError(operation string, err error) {
	l.l.Error("operation failed", zap.String("operation", operation), zap.Error(err))
}

func (l *Logger) LogErrorf(operation string, format string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.l.Info(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.l.Warn(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

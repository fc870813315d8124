package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
)

// LogBuilder accumulates fields for one entry. Tracking values stored in the
// context (request id, module, function, user id) are attached automatically.
type LogBuilder struct {
	ctx     context.Context
	level   zapcore.Level
	message string
	fields  []zap.Field
}

func newBuilder(ctx context.Context, level zapcore.Level, message string) *LogBuilder {
	b := &LogBuilder{
		ctx:     ctx,
		level:   level,
		message: message,
		fields:  make([]zap.Field, 0, 8),
	}
	b.extractContextFields()
	return b
}

func (b *LogBuilder) extractContextFields() {
	if b.ctx == nil {
		return
	}
	if requestID := ctxutil.GetRequestID(b.ctx); requestID != "" {
		b.fields = append(b.fields, zap.String("request_id", requestID))
	}
	if clientIP := ctxutil.GetClientIP(b.ctx); clientIP != "" {
		b.fields = append(b.fields, zap.String("client_ip", clientIP))
	}
	if userID, ok := ctxutil.GetUserID(b.ctx); ok {
		b.fields = append(b.fields, zap.Uint("user_id", userID))
	}
	if module := ctxutil.GetModule(b.ctx); module != "" {
		b.fields = append(b.fields, zap.String("module", module))
	}
	if function := ctxutil.GetFunction(b.ctx); function != "" {
		b.fields = append(b.fields, zap.String("function", function))
	}
}

func (b *LogBuilder) String(key, value string) *LogBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *LogBuilder) Int(key string, value int) *LogBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *LogBuilder) Int64(key string, value int64) *LogBuilder {
	b.fields = append(b.fields, zap.Int64(key, value))
	return b
}

func (b *LogBuilder) Uint(key string, value uint) *LogBuilder {
	b.fields = append(b.fields, zap.Uint(key, value))
	return b
}

func (b *LogBuilder) Float64(key string, value float64) *LogBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *LogBuilder) Bool(key string, value bool) *LogBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *LogBuilder) Duration(value time.Duration) *LogBuilder {
	b.fields = append(b.fields, zap.Duration("duration", value))
	return b
}

func (b *LogBuilder) Err(err error) *LogBuilder {
	if err != nil {
		b.fields = append(b.fields, zap.Error(err))
	}
	return b
}

func (b *LogBuilder) Any(key string, value any) *LogBuilder {
	b.fields = append(b.fields, zap.Any(key, value))
	return b
}

// Log writes the entry.
func (b *LogBuilder) Log() {
	switch b.level {
	case zapcore.DebugLevel:
		log.Debug(b.message, b.fields...)
	case zapcore.InfoLevel:
		log.Info(b.message, b.fields...)
	case zapcore.WarnLevel:
		log.Warn(b.message, b.fields...)
	case zapcore.ErrorLevel:
		log.Error(b.message, b.fields...)
	}
}

func DebugWithContext(ctx context.Context, message string) *LogBuilder {
	return newBuilder(ctx, zapcore.DebugLevel, message)
}

func InfoWithContext(ctx context.Context, message string) *LogBuilder {
	return newBuilder(ctx, zapcore.InfoLevel, message)
}

func WarnWithContext(ctx context.Context, message string) *LogBuilder {
	return newBuilder(ctx, zapcore.WarnLevel, message)
}

func ErrorWithContext(ctx context.Context, message string) *LogBuilder {
	return newBuilder(ctx, zapcore.ErrorLevel, message)
}

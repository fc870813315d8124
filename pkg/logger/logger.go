package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/campushq-id/bootcamp-api/config"
)

var log = zap.NewNop()

// InitLogger builds the process-wide zap logger. Production gets JSON at info
// level; anything else gets a console encoder at debug level.
func InitLogger(cfg *config.Config) error {
	var zapCfg zap.Config
	if cfg.App.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.LowercaseColorLevelEncoder
	}

	built, err := zapCfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}

	log = built.With(zap.String("app", cfg.App.Name))
	return nil
}

// GetLogger returns the structured logger.
func GetLogger() *zap.Logger {
	return log
}

// Sync flushes buffered entries; call before the process exits.
func Sync() {
	_ = log.Sync()
}

// LogRequest writes one access-log entry per handled request.
func LogRequest(method, path string, status int, latencyMs int64, clientIP, userAgent string) {
	log.Info("request handled",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", status),
		zap.Int64("latency_ms", latencyMs),
		zap.String("client_ip", clientIP),
		zap.String("user_agent", userAgent),
	)
}

// LogPanic records a recovered panic.
func LogPanic(recovered any) {
	log.Error("panic recovered", zap.Any("panic", recovered))
}

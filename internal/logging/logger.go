package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is silent until Initialize or SetLogger is called.
var logger = zap.NewNop()

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "WEATHER_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks the WEATHER_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// An empty path means stderr.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Colors only make sense on a terminal
	if path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogEffect logs an effect lifecycle event
func LogEffect(id string, kind string, event string, elapsed time.Duration) {
	Debug("Effect event",
		zap.String("effect_id", id),
		zap.String("kind", kind),
		zap.String("event", event),
		zap.Duration("elapsed", elapsed),
	)
}

// LogHTTPRequest logs an outgoing request to a remote service
func LogHTTPRequest(service string, method string, url string) {
	Debug("HTTP request sent",
		zap.String("service", service),
		zap.String("method", method),
		zap.String("url", url),
	)
}

// LogHTTPResponse logs the response of a remote service
func LogHTTPResponse(service string, statusCode int, length int, elapsed time.Duration) {
	Debug("HTTP response received",
		zap.String("service", service),
		zap.Int("status_code", statusCode),
		zap.Int("length", length),
		zap.Duration("elapsed", elapsed),
	)
}

// LogConfigWrite logs a settings write
func LogConfigWrite(path string, err error) {
	if err != nil {
		Error("Failed to save config",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Debug("Config saved", zap.String("path", path))
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

//file: internal/logger/logger.go

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"testweave/config"
)

// Logger wraps zap.Logger to provide application-specific logging with
// variadic key/value arguments.
type Logger struct {
	*zap.Logger
}

// New creates a console logger for the requested level. LogSilent
// yields a no-op logger; LogDebug additionally annotates entries with
// the calling site.
func New(level config.LogLevel) (*Logger, error) {
	if level == config.LogSilent {
		return NewNopLogger(), nil
	}

	var zapLevel zapcore.Level
	switch level {
	case config.LogError:
		zapLevel = zap.ErrorLevel
	case config.LogWarn:
		zapLevel = zap.WarnLevel
	case config.LogInfo:
		zapLevel = zap.InfoLevel
	case config.LogVerbose, config.LogDebug:
		zapLevel = zap.DebugLevel
	default:
		zapLevel = zap.InfoLevel
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	zapCfg.EncoderConfig.TimeKey = ""
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapCfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if level == config.LogDebug {
		opts = append(opts, zap.AddCaller())
	} else {
		opts = append(opts, zap.WithCaller(false))
	}

	zl, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Logger{Logger: zl}, nil
}

// NewNopLogger returns a logger that discards everything. Used for
// silent mode and for quiet code paths in tests.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Error logs a message at Error level
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Logger.Error(msg, argsToFields(args...)...)
}

// Warn logs a message at Warn level
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Logger.Warn(msg, argsToFields(args...)...)
}

// Info logs a message at Info level
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Logger.Info(msg, argsToFields(args...)...)
}

// Debug logs a message at Debug level
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Logger.Debug(msg, argsToFields(args...)...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}

// argsToFields converts variadic args to zap fields
func argsToFields(args ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			key, ok := args[i].(string)
			if !ok {
				continue
			}
			fields = append(fields, zap.Any(key, args[i+1]))
		}
	}
	return fields
}

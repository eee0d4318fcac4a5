//file: internal/logger/logger_test.go

package logger

import (
	"testing"

	"testweave/config"
)

func TestNewForEveryLevel(t *testing.T) {
	levels := []config.LogLevel{
		config.LogSilent,
		config.LogError,
		config.LogWarn,
		config.LogInfo,
		config.LogVerbose,
		config.LogDebug,
	}
	for _, level := range levels {
		log, err := New(level)
		if err != nil {
			t.Fatalf("New(%v) error = %v, want nil", level, err)
		}
		if log == nil {
			t.Fatalf("New(%v) = nil logger", level)
		}
		// Exercise the variadic key/value path, including an odd
		// argument count and a non-string key, which must not panic.
		log.Info("message", "key", "value", 42, "x", "dangling")
		log.Debug("debug message", "n", 1)
		log.Warn("warn message")
		log.Error("error message", "err", "boom")
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	log := NewNopLogger()
	log.Info("ignored", "k", "v")
	log.Error("ignored")
	if err := log.Sync(); err != nil {
		t.Errorf("Sync() error = %v, want nil", err)
	}
}

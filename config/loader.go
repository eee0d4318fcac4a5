//file: config/loader.go

package config

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Logger is the logging surface the config package needs. Satisfied by
// *logger.Logger; declared here so the package stays import-cycle free.
type Logger interface {
	Error(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// LoadConfigFile reads and parses a single JSON config file.
//
// A file that does not exist yields (nil, false, nil): absence is not
// an error at this layer because project configs are optional. A file
// that exists but does not parse also yields absent, but emits a
// warning first. The caller decides whether absence is acceptable.
func LoadConfigFile(path string, log Logger) (RawConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw RawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("config file is not valid JSON, ignoring it",
			"path", path,
			"error", err.Error())
		return nil, false, nil
	}

	return raw, true, nil
}

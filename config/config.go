//file: config/config.go

package config

// LogLevel controls how chatty the tool is. Levels are ordered from
// completely quiet to full debug output.
type LogLevel int

const (
	LogSilent LogLevel = iota
	LogError
	LogWarn
	LogInfo
	LogVerbose
	LogDebug
)

// String returns the canonical name used in diagnostics.
func (l LogLevel) String() string {
	switch l {
	case LogSilent:
		return "SILENT"
	case LogError:
		return "ERROR"
	case LogWarn:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogVerbose:
		return "VERBOSE"
	case LogDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// GeneratedFileIgnore is the exclusion that must always be present in
// the effective ignore list so the tool never reprocesses its own
// generated test files.
const GeneratedFileIgnore = "**/*.test.*"

// Conventional project config filename looked up in the working
// directory when --config is not given.
const ProjectConfigName = ".testweave.json"

// Paths of the packaged configuration, relative to the base directory
// the resolver is handed.
const (
	DefaultConfigPath = "config/default.json"
	SchemaPath        = "config/config.schema.json"
)

// Valid values for the testKeyword setting.
const (
	KeywordIt   = "it"
	KeywordTest = "test"
)

// EffectiveConfig is the single, fully-resolved settings object a
// command action consumes. It is built fresh on every invocation and
// never persisted.
type EffectiveConfig struct {
	LogLevel                LogLevel
	EffectivePatterns       []string
	EffectiveIgnorePatterns []string
	IsDryRun                bool
	TestKeyword             string
	WatchMode               bool
	NoCleanup               bool

	// init-only
	Quick bool
	Force bool
}

// RawConfig is an untyped key/value mapping parsed straight from a JSON
// config file. It carries no identity beyond its source and is never
// mutated after loading.
type RawConfig map[string]interface{}

// merge shallow-merges overlay onto base key-by-key. Array and object
// values from the overlay replace the base value entirely; there is no
// deep merge. Neither input is mutated.
func merge(base, overlay RawConfig) RawConfig {
	out := make(RawConfig, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// boolKey reads a boolean-valued key from a raw config, tolerating its
// absence.
func boolKey(raw RawConfig, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// stringKey reads a string-valued key from a raw config.
func stringKey(raw RawConfig, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// stringSliceKey reads an array-of-strings key from a raw config.
// JSON arrays decode as []interface{}, so each element is asserted
// individually.
func stringSliceKey(raw RawConfig, key string) []string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

//file: config/resolve.go

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Option keys as they appear in a CLI options map. These match the
// pflag flag names declared by the commands.
const (
	OptVerbose     = "verbose"
	OptDebug       = "debug"
	OptSilent      = "silent"
	OptWatch       = "watch"
	OptConfig      = "config"
	OptIgnore      = "ignore"
	OptDryRun      = "dry-run"
	OptTestKeyword = "test-keyword"
	OptNoCleanup   = "no-cleanup"
	OptQuick       = "quick"
	OptForce       = "force"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// TESTWEAVE_DRY_RUN=true.
const envPrefix = "TESTWEAVE"

// Resolve combines the packaged default config, an optional project
// config, environment overrides and the CLI options into one effective
// configuration. Precedence, closest to the invoker first:
//
//	CLI flag > environment > project config > default config > hard default
//
// The options map must contain only flags the user explicitly set;
// that is what lets boolean fields distinguish "flag passed as false"
// from "flag not passed".
//
// baseDir is the directory holding the packaged config/ tree (schema
// and default.json). A missing or invalid default config is fatal: the
// tool cannot run without a validated baseline. An explicit --config
// path that does not exist is also fatal. The conventional project
// file is optional and contributes nothing when absent.
func Resolve(args []string, opts map[string]interface{}, baseDir string, log Logger) (*EffectiveConfig, string, error) {
	validator, err := NewSchemaValidator(filepath.Join(baseDir, SchemaPath))
	if err != nil {
		return nil, "", err
	}

	defaultPath := filepath.Join(baseDir, DefaultConfigPath)
	defaults, present, err := LoadConfigFile(defaultPath, log)
	if err != nil {
		return nil, "", err
	}
	if !present {
		return nil, "", fmt.Errorf("default config not found or unreadable at %s (reinstall the tool or point it at an intact install)", defaultPath)
	}
	if err := validator.Validate(defaults, "default config", log); err != nil {
		return nil, "", err
	}

	project, sourceLabel, err := loadProjectConfig(opts, log)
	if err != nil {
		return nil, "", err
	}

	merged := merge(defaults, project)
	if err := validator.Validate(merged, "merged config ("+sourceLabel+")", log); err != nil {
		return nil, "", err
	}

	eff := buildEffective(args, opts, envOverrides(), merged)
	log.Debug("resolved effective configuration",
		"source", sourceLabel,
		"logLevel", eff.LogLevel.String(),
		"patterns", eff.EffectivePatterns,
		"ignore", eff.EffectiveIgnorePatterns,
		"dryRun", eff.IsDryRun,
		"testKeyword", eff.TestKeyword,
		"watch", eff.WatchMode)

	return eff, sourceLabel, nil
}

// loadProjectConfig picks the project config source: an explicit
// --config path wins and must exist; otherwise the conventional file
// in the working directory contributes silently, or not at all.
func loadProjectConfig(opts map[string]interface{}, log Logger) (RawConfig, string, error) {
	if v, ok := opts[OptConfig]; ok {
		path, _ := v.(string)
		if _, err := os.Stat(path); err != nil {
			return nil, "", fmt.Errorf("custom config %s not found (expected a JSON file at that path)", path)
		}
		raw, present, err := LoadConfigFile(path, log)
		if err != nil {
			return nil, "", err
		}
		if !present {
			// Exists but unparseable. The user asked for this file
			// specifically, so unlike the conventional fallback this
			// is fatal.
			return nil, "", fmt.Errorf("custom config %s is not valid JSON", path)
		}
		return raw, path, nil
	}

	raw, present, err := LoadConfigFile(ProjectConfigName, log)
	if err != nil {
		return nil, "", err
	}
	if !present {
		return RawConfig{}, "default config only", nil
	}
	return raw, ProjectConfigName, nil
}

// envOverrides collects TESTWEAVE_* environment variables into a raw
// overlay. Only declared keys are bound, so the overlay can never
// introduce a key the schema would reject.
func envOverrides() RawConfig {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.BindEnv("verbose", "TESTWEAVE_VERBOSE")
	v.BindEnv("debug", "TESTWEAVE_DEBUG")
	v.BindEnv("silent", "TESTWEAVE_SILENT")
	v.BindEnv("dryRun", "TESTWEAVE_DRY_RUN")
	v.BindEnv("testKeyword", "TESTWEAVE_TEST_KEYWORD")
	v.BindEnv("noCleanup", "TESTWEAVE_NO_CLEANUP")

	env := RawConfig{}
	for _, key := range []string{"verbose", "debug", "silent", "dryRun", "noCleanup"} {
		if v.IsSet(key) {
			env[key] = v.GetBool(key)
		}
	}
	if v.IsSet("testKeyword") {
		env["testKeyword"] = v.GetString("testKeyword")
	}
	return env
}

// buildEffective layers CLI options over env overrides over the merged
// file config, field by field. A blanket map merge would lose the
// "explicitly set" distinction boolean flags need, so each field
// applies its own precedence rule.
func buildEffective(args []string, opts map[string]interface{}, env, merged RawConfig) *EffectiveConfig {
	eff := &EffectiveConfig{
		LogLevel:    resolveLogLevel(opts, env, merged),
		TestKeyword: KeywordIt,
	}

	// Positional patterns replace the configured list entirely.
	if len(args) > 0 {
		eff.EffectivePatterns = append([]string{}, args...)
	} else {
		eff.EffectivePatterns = stringSliceKey(merged, "patterns")
	}
	if eff.EffectivePatterns == nil {
		eff.EffectivePatterns = []string{}
	}

	var ignore []string
	if v, ok := opts[OptIgnore]; ok {
		ignore, _ = v.([]string)
	} else {
		ignore = stringSliceKey(merged, "ignore")
	}
	eff.EffectiveIgnorePatterns = dedupeWithBaseline(ignore)

	eff.IsDryRun = resolveBool(opts, OptDryRun, env, merged, "dryRun")
	eff.NoCleanup = resolveBool(opts, OptNoCleanup, env, merged, "noCleanup")
	eff.Quick = resolveBool(opts, OptQuick, env, merged, "quick")
	eff.Force = resolveBool(opts, OptForce, env, merged, "force")

	if v, ok := opts[OptTestKeyword]; ok {
		eff.TestKeyword, _ = v.(string)
	} else if kw, ok := env["testKeyword"]; ok {
		eff.TestKeyword, _ = kw.(string)
	} else if kw := stringKey(merged, "testKeyword"); kw != "" {
		eff.TestKeyword = kw
	}
	if eff.TestKeyword != KeywordIt && eff.TestKeyword != KeywordTest {
		eff.TestKeyword = KeywordIt
	}

	// Watch mode is flag-only; there is no config key for it.
	if v, ok := opts[OptWatch]; ok {
		eff.WatchMode, _ = v.(bool)
	}

	return eff
}

// resolveBool applies the standard boolean precedence: explicit CLI
// flag, then env, then config key, then false.
func resolveBool(opts map[string]interface{}, optKey string, env, merged RawConfig, configKey string) bool {
	if v, ok := opts[optKey]; ok {
		b, _ := v.(bool)
		return b
	}
	if v, ok := env[configKey]; ok {
		b, _ := v.(bool)
		return b
	}
	return boolKey(merged, configKey)
}

// resolveLogLevel picks the verbosity from whichever layer set one,
// debug winning over verbose winning over silent within a layer.
func resolveLogLevel(opts map[string]interface{}, env, merged RawConfig) LogLevel {
	for _, layer := range []func(string) (bool, bool){
		func(k string) (bool, bool) {
			v, ok := opts[k]
			b, _ := v.(bool)
			return b, ok
		},
		func(k string) (bool, bool) {
			v, ok := env[k]
			b, _ := v.(bool)
			return b, ok
		},
		func(k string) (bool, bool) {
			v, ok := merged[k]
			b, _ := v.(bool)
			return b, ok
		},
	} {
		debug, _ := layer("debug")
		verbose, _ := layer("verbose")
		silent, _ := layer("silent")
		switch {
		case debug:
			return LogDebug
		case verbose:
			return LogVerbose
		case silent:
			return LogSilent
		}
	}
	return LogInfo
}

// dedupeWithBaseline de-duplicates the ignore list with set semantics,
// keeping first-seen order, and guarantees the generated-file
// exclusion is present exactly once.
func dedupeWithBaseline(ignore []string) []string {
	out := []string{GeneratedFileIgnore}
	seen := map[string]bool{GeneratedFileIgnore: true}
	for _, p := range ignore {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

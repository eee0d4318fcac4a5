//file: cmd/testweave/cmd/root.go

// Package cmd holds the testweave subcommands and the manifest the
// command registry applies to the root program.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"testweave/config"
	"testweave/internal/cliopt"
	"testweave/internal/logger"
	"testweave/internal/registry"
)

// Manifest enumerates the built-in commands in registration order,
// which is also their help-listing order.
func Manifest() []registry.Registration {
	return []registry.Registration{
		{Name: "generate", Register: registerGenerate},
		{Name: "init", Register: registerInit},
	}
}

// BaseDir locates the directory holding the packaged config/ tree.
// TESTWEAVE_HOME wins; otherwise the directory next to the executable
// is used when it carries a config tree, falling back to the working
// directory for development checkouts.
func BaseDir() string {
	if home := os.Getenv("TESTWEAVE_HOME"); home != "" {
		return home
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if _, err := os.Stat(filepath.Join(dir, config.DefaultConfigPath)); err == nil {
			return dir
		}
	}
	return "."
}

// collectOptions flattens the root program's persistent flags and the
// invoked command's own flags into one changed-only options map,
// command-level values winning.
func collectOptions(cmd *cobra.Command) cliopt.Options {
	global := cliopt.FromFlagSet(cmd.Root().PersistentFlags())
	local := cliopt.FromFlagSet(cmd.Flags())
	return cliopt.Merge(global, local)
}

// resolveConfig runs the full cascade for one command invocation and
// builds the logger the action should use. Resolution itself logs
// through a bootstrap logger whose level comes from the CLI flags
// alone, since the effective level is not known until the cascade is
// done.
func resolveConfig(cmd *cobra.Command, args []string) (*config.EffectiveConfig, *logger.Logger, error) {
	opts := collectOptions(cmd)

	bootLog, err := logger.New(bootstrapLevel(opts))
	if err != nil {
		return nil, nil, err
	}

	eff, sourceLabel, err := config.Resolve(args, opts, BaseDir(), bootLog)
	if err != nil {
		// Resolution already logged itemized diagnostics; the error
		// carries the one-line summary for cobra to print.
		return nil, nil, err
	}

	log, err := logger.New(eff.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration source", "source", sourceLabel)
	return eff, log, nil
}

// bootstrapLevel derives a log level from the CLI flags only.
func bootstrapLevel(opts cliopt.Options) config.LogLevel {
	flagSet := func(name string) bool {
		v, ok := opts[name]
		if !ok {
			return false
		}
		b, _ := v.(bool)
		return b
	}
	switch {
	case flagSet(config.OptDebug):
		return config.LogDebug
	case flagSet(config.OptVerbose):
		return config.LogVerbose
	case flagSet(config.OptSilent):
		return config.LogSilent
	}
	return config.LogInfo
}

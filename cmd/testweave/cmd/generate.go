//file: cmd/testweave/cmd/generate.go

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"testweave/config"
	"testweave/internal/logger"
	"testweave/internal/watch"
	"testweave/internal/weave"
)

func registerGenerate(root *cobra.Command) error {
	generateCmd := &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate skeleton test files from YAML outlines",
		Long: `The generate command expands the effective glob patterns, parses each
matching YAML outline, and writes a skeleton test file (nested describe
blocks with todo stubs) next to each source. Positional patterns replace
the configured ones entirely. With --watch it keeps running and
regenerates on filesystem changes.`,
		RunE: runGenerate,
	}

	generateCmd.Flags().BoolP("watch", "w", false, "Watch matched files and regenerate on change")
	generateCmd.Flags().StringP("config", "c", "", "Path to a project config file (fatal if missing)")
	generateCmd.Flags().StringSliceP("ignore", "i", nil, "Glob patterns to exclude")
	generateCmd.Flags().BoolP("dry-run", "n", false, "Log what would be written without writing")
	generateCmd.Flags().StringP("test-keyword", "k", "", "Test keyword to emit: it or test")
	generateCmd.Flags().Bool("no-cleanup", false, "Keep generated files when their source disappears")

	root.AddCommand(generateCmd)
	return nil
}

// runGenerate also backs the root command, so a bare
// "testweave <pattern>" behaves as generate.
func runGenerate(cmd *cobra.Command, args []string) error {
	eff, log, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	weaver := weave.New(eff, log)
	summary := weaver.RunBatch()

	if !eff.WatchMode {
		if summary.Matched == 0 {
			log.Warn("no files matched the effective patterns",
				"patterns", eff.EffectivePatterns)
		}
		return nil
	}

	return runWatch(eff, weaver, log)
}

// runWatch blocks on the watch service until the process is signalled.
func runWatch(eff *config.EffectiveConfig, weaver *weave.Weaver, log *logger.Logger) error {
	service, err := watch.New(
		eff.EffectivePatterns,
		eff.EffectiveIgnorePatterns,
		watch.DefaultDebounce,
		func(event watch.Event) {
			switch event.Type {
			case watch.Add, watch.Change:
				if err := weaver.ProcessFile(event.Path); err != nil {
					log.Error("failed to process changed file",
						"file", event.Path,
						"error", err.Error())
				}
			case watch.Unlink:
				if err := weaver.Cleanup(event.Path); err != nil {
					log.Error("failed to clean up generated file",
						"source", event.Path,
						"error", err.Error())
				}
			}
		},
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to start watch mode: %w", err)
	}

	if err := service.Start(); err != nil {
		return fmt.Errorf("failed to start watch mode: %w", err)
	}
	defer service.Close()

	log.Info("watching for changes", "patterns", eff.EffectivePatterns)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down watch mode")
	return nil
}

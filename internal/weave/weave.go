//file: internal/weave/weave.go

// Package weave runs the generation pipeline: expand the configured
// glob patterns, parse each YAML outline, and write the corresponding
// skeleton test file next to it.
package weave

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"testweave/config"
	"testweave/internal/generator"
	"testweave/internal/logger"
	"testweave/internal/pathmatch"
)

// Weaver holds the resolved configuration for one run or watch
// session.
type Weaver struct {
	cfg *config.EffectiveConfig
	log *logger.Logger
}

// New creates a Weaver for the given effective configuration.
func New(cfg *config.EffectiveConfig, log *logger.Logger) *Weaver {
	return &Weaver{cfg: cfg, log: log}
}

// Summary reports what one batch run did.
type Summary struct {
	Matched   int `json:"matched"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
}

// RunBatch processes every effective pattern once. A pattern that
// fails to expand, or a file that fails to parse or write, is logged
// and counted but never aborts the batch; one bad input must not sink
// the rest.
func (w *Weaver) RunBatch() Summary {
	var summary Summary
	for _, pattern := range w.cfg.EffectivePatterns {
		files, err := pathmatch.Match(pattern, w.cfg.EffectiveIgnorePatterns)
		if err != nil {
			w.log.Error("failed to expand pattern, skipping it",
				"pattern", pattern,
				"error", err.Error())
			summary.Failed++
			continue
		}
		if len(files) == 0 {
			w.log.Debug("pattern matched no files", "pattern", pattern)
			continue
		}
		for _, file := range files {
			summary.Matched++
			if err := w.ProcessFile(file); err != nil {
				w.log.Error("failed to process file",
					"file", file,
					"error", err.Error())
				summary.Failed++
				continue
			}
			summary.Generated++
		}
	}
	w.log.Info("run complete",
		"matched", summary.Matched,
		"generated", summary.Generated,
		"failed", summary.Failed)
	return summary
}

// ProcessFile generates the skeleton for a single YAML source and
// writes it, or logs what it would write in dry-run mode.
func (w *Weaver) ProcessFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	skeleton, err := generator.Generate(&doc, w.cfg.TestKeyword, filepath.Base(path))
	if err != nil {
		return err
	}

	out := OutputPath(path)
	if w.cfg.IsDryRun {
		w.log.Info("dry run: would write skeleton",
			"source", path,
			"output", out,
			"bytes", len(skeleton))
		return nil
	}

	if err := os.WriteFile(out, []byte(skeleton), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	w.log.Debug("wrote skeleton", "source", path, "output", out)
	return nil
}

// Cleanup removes the generated counterpart of a source file that no
// longer exists. Honors both noCleanup and dry-run; missing outputs
// are not an error.
func (w *Weaver) Cleanup(sourcePath string) error {
	if w.cfg.NoCleanup {
		return nil
	}
	out := OutputPath(sourcePath)
	if w.cfg.IsDryRun {
		w.log.Info("dry run: would remove orphaned skeleton", "output", out)
		return nil
	}
	if err := os.Remove(out); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", out, err)
	}
	w.log.Info("removed orphaned skeleton", "source", sourcePath, "output", out)
	return nil
}

// OutputPath maps a YAML source path to its generated test file: the
// .yaml/.yml extension is replaced with .test.js.
func OutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := sourcePath
	if strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml") {
		base = strings.TrimSuffix(sourcePath, ext)
	}
	return base + ".test.js"
}

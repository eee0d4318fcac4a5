//file: cmd/testweave/cmd/init.go

package cmd

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"testweave/cmd/testweave/assets"
	"testweave/config"
	"testweave/internal/cli"
	"testweave/internal/cliopt"
)

func registerInit(root *cobra.Command) error {
	initCmd := &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a project config file",
		Long: `The init command writes a project configuration file (by default
` + config.ProjectConfigName + ` in the working directory). Without --quick it asks a
few questions interactively; with --quick it writes the packaged
starter config as-is. An existing file is only replaced with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	initCmd.Flags().BoolP("quick", "q", false, "Skip the prompts and write the starter config")
	initCmd.Flags().Bool("no-defaults", false, "Write only the keys you answered, no starter defaults")

	root.AddCommand(initCmd)
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	eff, log, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	defer log.Sync()

	// The flag-complete options map: any declared boolean can be read
	// without an existence check.
	opts := cliopt.MergeForCommand(
		cliopt.FromFlagSet(cmd.Root().PersistentFlags()),
		cliopt.FromFlagSet(cmd.Flags()),
		cliopt.DefsFromFlagSet(cmd.Root().PersistentFlags()),
		cliopt.DefsFromFlagSet(cmd.Flags()),
	)
	noDefaults, _ := opts["no-defaults"].(bool)

	target := config.ProjectConfigName
	if len(args) == 1 {
		target = args[0]
	}

	if _, err := os.Stat(target); err == nil && !eff.Force {
		return fmt.Errorf("%s already exists (use --force to replace it)", target)
	}

	var content []byte
	if eff.Quick {
		content = assets.StarterConfig
	} else {
		content, err = buildInteractive(cli.NewPrompter(), noDefaults)
		if err != nil {
			return fmt.Errorf("interactive init failed: %w", err)
		}
	}

	if eff.IsDryRun {
		log.Info("dry run: would write project config", "path", target)
		return nil
	}

	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Printf("%s✓ Wrote %s%s\n", cli.ColorGreen, target, cli.ColorReset)
	return nil
}

// buildInteractive asks for the few settings most projects change and
// assembles the config file content. With noDefaults only the answered
// keys are written; otherwise the answers overlay the starter config.
func buildInteractive(prompter cli.Prompter, noDefaults bool) ([]byte, error) {
	patterns, err := prompter.AskWithDefault(
		"Glob patterns for your YAML outlines (comma-separated)",
		"tests/**/*.yaml")
	if err != nil {
		return nil, err
	}

	ignore, err := prompter.Ask("Glob patterns to ignore (comma-separated, empty for none):")
	if err != nil {
		return nil, err
	}

	keyword, err := prompter.AskWithDefault(
		"Test keyword to emit (it or test)",
		config.KeywordIt)
	if err != nil {
		return nil, err
	}
	if keyword != config.KeywordIt && keyword != config.KeywordTest {
		keyword = config.KeywordIt
	}

	answers := map[string]interface{}{
		"patterns":    splitList(patterns),
		"testKeyword": keyword,
	}
	if ignored := splitList(ignore); len(ignored) > 0 {
		answers["ignore"] = ignored
	}

	out := answers
	if !noDefaults {
		var starter map[string]interface{}
		if err := json.Unmarshal(assets.StarterConfig, &starter); err != nil {
			return nil, fmt.Errorf("packaged starter config is broken: %w", err)
		}
		for k, v := range answers {
			starter[k] = v
		}
		out = starter
	}

	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

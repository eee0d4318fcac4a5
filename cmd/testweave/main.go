//file: cmd/testweave/main.go

package main

import (
	"os"

	"github.com/spf13/cobra"

	"testweave/cmd/testweave/cmd"
	"testweave/config"
	"testweave/internal/logger"
	"testweave/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "testweave [patterns...]",
	Short: "Turn YAML outlines into skeleton test files",
	Long: `testweave scans (or watches) YAML outline files selected by glob
patterns and writes a skeleton test file for each one: nested describe
blocks with todo stubs, ready to fill in. Settings cascade from CLI
flags over a project config file over the packaged defaults.`,
	SilenceUsage: true,
	// Running the root with positional patterns behaves as generate;
	// with no args it shows help.
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.Help()
		}
		return runGenerateFromRoot(c, args)
	},
}

func init() {
	// Help lists commands in registration order.
	cobra.EnableCommandSorting = false

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug output with call sites")
	rootCmd.PersistentFlags().BoolP("silent", "s", false, "Suppress all output")

	// Flags have not been parsed yet, so registration warnings go
	// through a warn-level logger unconditionally.
	bootLog, err := logger.New(config.LogWarn)
	if err != nil {
		bootLog = logger.NewNopLogger()
	}

	reg := registry.New()
	reg.AddAll(cmd.Manifest())
	reg.Apply(rootCmd, bootLog)
}

// runGenerateFromRoot re-dispatches a bare invocation through the
// generate subcommand so its flag declarations apply.
func runGenerateFromRoot(root *cobra.Command, args []string) error {
	for _, sub := range root.Commands() {
		if sub.Name() == "generate" {
			return sub.RunE(sub, args)
		}
	}
	return root.Help()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

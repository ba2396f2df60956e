// Package cmd implements the forgectl CLI commands using Cobra.
// Each command is a thin pass-through to the external forgekit toolchain:
// forgectl builds the argument vector, streams the tool's output, and
// mirrors its exit code.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledokoz/forgekit-go/internal/config"
	"github.com/ledokoz/forgekit-go/internal/version"
)

// appConfig holds the loaded application configuration.
var appConfig *config.Config

// configLoader is used for reading and persisting configuration.
var configLoader *config.Loader

var rootCmd = &cobra.Command{
	Use:   "forgectl",
	Short: "Drive the ForgeKit toolchain for .mox applications",
	Long: `forgectl is a command line bridge to the ForgeKit toolchain, the
external binary that scaffolds, builds, and packages .mox application
bundles for Ledokoz OS.

Every command is forwarded to the forgekit binary; its output streams
through and its exit code is mirrored. Install the toolchain with
'cargo install forgekit-cli' or point FORGEKIT_PATH at an existing
binary.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Store dependencies in context for subcommands
		ctx := cmd.Context()
		ctx = WithConfig(ctx, appConfig)
		ctx = WithLoader(ctx, configLoader)
		cmd.SetContext(ctx)

		return nil
	},
}

// exitError carries a toolchain exit status that the CLI should mirror.
// The tool has already written its own diagnostics to stderr, so this
// error is never printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("forgekit exited with status %d", e.code)
}

// Execute runs the root command and returns the process exit code: the
// toolchain's own code on normal completion, 1 on any other failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "echo toolchain argument vectors and diagnostics")
}

func initConfig() {
	loader, err := config.NewLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
		return
	}

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config validation failed: %v\n", err)
	}

	appConfig = cfg
	configLoader = loader
}

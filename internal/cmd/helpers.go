package cmd

import (
	"github.com/spf13/cobra"

	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/ledokoz/forgekit-go/internal/exec"
	"github.com/ledokoz/forgekit-go/internal/prompt"
	"github.com/ledokoz/forgekit-go/internal/toolchain"
)

// passthrough forwards the given argument vector to the forgekit binary in
// streamed mode and converts a non-zero exit into an exitError so Execute
// can mirror it.
func passthrough(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bin := ""
	dir := ""
	verbose, _ := cmd.Flags().GetBool("verbose")

	if cfg := ConfigFromContext(ctx); cfg != nil {
		dir = cfg.Toolchain.Dir
		verbose = verbose || cfg.Verbose
	}

	if loader := LoaderFromContext(ctx); loader != nil {
		resolver := toolchain.NewResolver(loader, prompt.New(), exec.New())
		resolved, err := resolver.Resolve(ctx)
		if err != nil {
			return err
		}
		bin = resolved
	}

	tc := forgekit.New(forgekit.Config{
		Bin:     bin,
		Dir:     dir,
		Verbose: verbose,
	})

	code, err := tc.Passthrough(ctx, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// pathFlag reads the shared --path flag.
func pathFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("path")
	return path
}

// addPathFlag registers the shared --path flag on a command.
func addPathFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("path", "p", "", "path to the project (defaults to the current directory)")
}

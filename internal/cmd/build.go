package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the current project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.BuildArgs(forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

func init() {
	addPathFlag(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and run the project locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.RunArgs(forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

func init() {
	addPathFlag(runCmd)
	rootCmd.AddCommand(runCmd)
}

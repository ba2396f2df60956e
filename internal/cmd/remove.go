package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <dependency>",
	Short: "Remove a dependency from the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.RemoveArgs(args[0], forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

func init() {
	addPathFlag(removeCmd)
	rootCmd.AddCommand(removeCmd)
}

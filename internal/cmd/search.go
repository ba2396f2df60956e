package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the package registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.SearchArgs(args[0], forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

func init() {
	addPathFlag(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

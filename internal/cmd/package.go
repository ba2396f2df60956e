package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Package the project into a .mox bundle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.PackageArgs(forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

var buildPackageCmd = &cobra.Command{
	Use:   "build-package",
	Short: "Build and package the project in one step",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough(cmd, forgekit.BuildPackageArgs(forgekit.ProjectOptions{Path: pathFlag(cmd)}))
	},
}

func init() {
	addPathFlag(packageCmd)
	addPathFlag(buildPackageCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(buildPackageCmd)
}

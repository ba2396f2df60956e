package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <dependency>",
	Short: "Add a dependency to the project",
	Example: `  # Latest version from the registry
  forgectl add serde

  # Pin a specific version
  forgectl add serde --version 1.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ver, _ := cmd.Flags().GetString("version")
		return passthrough(cmd, forgekit.AddArgs(args[0], forgekit.AddOptions{
			Path:    pathFlag(cmd),
			Version: ver,
		}))
	},
}

func init() {
	addPathFlag(addCmd)
	addCmd.Flags().StringP("version", "v", "", "dependency version to install")
	rootCmd.AddCommand(addCmd)
}

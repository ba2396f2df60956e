package cmd

import (
	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new .mox application",
	Long: `Create a new .mox application scaffolded from a template.

The project is created in a directory named after the project, unless
--path says otherwise. List the available templates with
'forgectl templates'.`,
	Example: `  # Scaffold with the default template
  forgectl new myapp

  # Scaffold a CLI application in a specific directory
  forgectl new myapp --template cli --path ~/src/myapp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, _ := cmd.Flags().GetString("template")
		return passthrough(cmd, forgekit.NewArgs(args[0], forgekit.NewOptions{
			Path:     pathFlag(cmd),
			Template: template,
		}))
	},
}

func init() {
	addPathFlag(newCmd)
	newCmd.Flags().StringP("template", "t", "", "scaffolding template to use")
	rootCmd.AddCommand(newCmd)
}

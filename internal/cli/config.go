package cli

import (
	"fmt"

	"tasklist/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	var (
		pretty  bool
		example bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration the interactive screen would start with, after
defaults, the config file, TASKLIST_* variables and flags are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.ExampleTOML)
				return err
			}
			cfg, err := resolveConfig(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, map[string]any{"data": cfg}, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&example, "example", false, "Print a commented config file with every key at its default")

	return cmd
}

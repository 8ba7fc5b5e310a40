package cli

import (
	"fmt"
	"strconv"

	"tasklist/internal/tui"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newKeysCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key bindings of the interactive screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := tui.KeysMarkdown()
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			width, err := strconv.Atoi(envOr("COLUMNS", "80"))
			if err != nil || width <= 0 {
				width = 80
			}
			out := cmd.OutOrStdout()
			render := tui.RenderMarkdown
			// Pipes, files and NO_COLOR get glamour's plain style.
			if termenv.NewOutput(out).EnvColorProfile() == termenv.Ascii {
				render = tui.RenderMarkdownNoColor
			}
			_, err = fmt.Fprintln(out, render(md, width))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")

	return cmd
}

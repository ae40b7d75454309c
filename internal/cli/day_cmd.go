package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Edit a day of a program",
	}
	cmd.AddCommand(newDayThemeCmd(app))
	return cmd
}

func newDayThemeCmd(app *App) *cobra.Command {
	var internal, client string

	cmd := &cobra.Command{
		Use:   "theme <day-id>",
		Short: "Rename the internal or client theme of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Mutations.UpdateDayTheme(context.Background(), args[0], internal, client); err != nil {
				return err
			}
			return render(cmd, map[string]string{"day_id": args[0]}, func() string {
				return "Day theme saved\n"
			})
		},
	}

	cmd.Flags().StringVar(&internal, "internal", "", "Theme shown to concierges")
	cmd.Flags().StringVar(&client, "client", "", "Theme shown to the client")
	cmd.MarkFlagsOneRequired("internal", "client")
	return cmd
}

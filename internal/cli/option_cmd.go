package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOptionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Choose or replace the venue options of a slot",
	}

	cmd.AddCommand(
		newOptionSelectCmd(app),
		newOptionRegenerateCmd(app),
	)

	return cmd
}

func newOptionSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <slot-id> <option-id>...",
		Short: "Select one option, or up to four in a shopping slot",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := app.Mutations.SelectOptions(context.Background(), args[0], args[1:])
			if err != nil {
				return err
			}
			return render(cmd, slot, func() string {
				return formatter.FormatSlot(slot, formatter.AudienceInternal)
			})
		},
	}
}

func newOptionRegenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate <option-id>",
		Short: "Replace an option with another venue of the same category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			venue, err := app.Mutations.RegenerateOption(context.Background(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, venue, func() string {
				return fmt.Sprintf("Replaced with %s %s\n", formatter.Bold(venue.Name), formatter.Dim("("+venue.SubCategory+")"))
			})
		},
	}
}

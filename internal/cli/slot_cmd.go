package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/alexanderramin/concierge/internal/generation"
	"github.com/spf13/cobra"
)

func newSlotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Edit a time slot of a program",
	}

	cmd.AddCommand(
		newSlotSwitchCmd(app),
		newSlotRestCmd(app),
		newSlotTimeCmd(app),
		newSlotNotesCmd(app),
	)

	return cmd
}

func newSlotSwitchCmd(app *App) *cobra.Command {
	var (
		category categoryFlag
		date, at string
	)

	cmd := &cobra.Command{
		Use:   "switch <slot-id>",
		Short: "Fill a slot with venues of another category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var day *time.Time
			if date != "" {
				d, err := generation.ParseRequiredDate(date, "date")
				if err != nil {
					return err
				}
				day = &d
			}
			target := category.value
			options, err := app.Mutations.SwitchActivityType(context.Background(), args[0], target, day, at)
			if err != nil {
				return err
			}
			return render(cmd, options, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "Switched to %s\n", formatter.CategoryBadge(target))
				for _, o := range options {
					fmt.Fprintf(&b, "  %s %s  %s\n", formatter.Dim("○"), o.VenueName, formatter.Dim(o.ID))
				}
				return b.String()
			})
		},
	}

	addCategoryFlag(cmd.Flags(), &category, "Target category (museums, activities, spas, shopping, nightlife, restaurants)")
	cmd.Flags().StringVar(&date, "date", "", "Day to check opening hours against (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "time", "", "Time to check opening hours against (HH:MM)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newSlotRestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rest <slot-id>",
		Short: "Toggle a slot between rest and activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, err := app.Mutations.ToggleRest(context.Background(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, map[string]bool{"is_rest": rest}, func() string {
				if rest {
					return "Slot is now a rest period\n"
				}
				return "Slot is now an activity\n"
			})
		},
	}
}

func newSlotTimeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "time <slot-id> [HH:MM]",
		Short: "Set the slot time, or restore its default when omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hhmm := ""
			if len(args) == 2 {
				hhmm = args[1]
			}
			slot, err := app.Mutations.AdjustTime(context.Background(), args[0], hhmm)
			if err != nil {
				return err
			}
			return render(cmd, slot, func() string {
				return fmt.Sprintf("Slot time %s\n", formatter.StyleYellow.Render(slot.EffectiveTime()))
			})
		},
	}
}

func newSlotNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes <slot-id> <notes>",
		Short: "Set the concierge notes of a slot",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := strings.Join(args[1:], " ")
			if err := app.Mutations.UpdateNotes(context.Background(), args[0], notes); err != nil {
				return err
			}
			return render(cmd, map[string]string{"notes": strings.TrimSpace(notes)}, func() string {
				return "Notes saved\n"
			})
		},
	}
}

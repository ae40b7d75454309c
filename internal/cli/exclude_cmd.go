package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExcludeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage venues a client never wants proposed",
	}

	cmd.AddCommand(
		newExcludeAddCmd(app),
		newExcludeListCmd(app),
		newExcludeRemoveCmd(app),
	)

	return cmd
}

func newExcludeAddCmd(app *App) *cobra.Command {
	var (
		user, venue, reason string
		category            categoryFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Exclude a venue for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Mutations.ExcludeVenue(context.Background(), user, venue, category.value, reason)
			if err != nil {
				return err
			}
			return render(cmd, e, func() string {
				return fmt.Sprintf("Excluded %s for %s %s\n", formatter.Bold(e.VenueName), e.UserID, formatter.Dim(e.ID))
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Client user ID")
	cmd.Flags().StringVar(&venue, "venue", "", "Venue name")
	addCategoryFlag(cmd.Flags(), &category, "Venue category")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the client rejected it")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("venue")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newExcludeListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's excluded venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Exclusions.List(context.Background(), user)
			if err != nil {
				return err
			}
			return render(cmd, list, func() string {
				return formatter.FormatExclusions(list)
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Client user ID")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newExcludeRemoveCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "remove <exclusion-id>",
		Short: "Allow an excluded venue again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Exclusions.Remove(context.Background(), user, args[0]); err != nil {
				return err
			}
			return render(cmd, map[string]string{"removed": args[0]}, func() string {
				return fmt.Sprintf("Removed exclusion %s\n", args[0])
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Client user ID")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

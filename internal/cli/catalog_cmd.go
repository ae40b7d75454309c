package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and reload the venue catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogReloadCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "list <category>",
		Short: "List the venues of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			venues, err := app.Catalog.List(context.Background(), domain.Category(strings.ToLower(args[0])), tags)
			if err != nil {
				return err
			}
			return render(cmd, venues, func() string {
				return formatter.FormatVenues(venues)
			})
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Only venues with these sub-category tags")
	return cmd
}

func newCatalogReloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Drop cached catalog tables and read them again",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Catalog.Reload(context.Background())
			if err != nil {
				return err
			}
			return render(cmd, counts, func() string {
				return formatter.FormatCategoryCounts(counts)
			})
		},
	}
}

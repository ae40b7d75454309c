package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/concierge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Programs   service.ProgramService
	Mutations  service.MutationService
	Exclusions service.ExclusionService
	Catalog    service.CatalogService

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCmd creates the top-level "concierge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "concierge",
		Short:         "Luxury trip programs: generation, editing and venue catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch f, _ := cmd.Flags().GetString("format"); f {
			case formatText, formatJSON:
				return nil
			default:
				return fmt.Errorf("invalid --format %q (expected text or json)", f)
			}
		},
	}
	root.PersistentFlags().String("format", formatText, "Output format: text or json")

	root.AddCommand(
		newPlanCmd(app),
		newOptionCmd(app),
		newSlotCmd(app),
		newDayCmd(app),
		newExcludeCmd(app),
		newCatalogCmd(app),
	)

	return root
}

// render writes v as indented JSON when --format json is set, and the text
// produced by text otherwise.
func render(cmd *cobra.Command, v any, text func() string) error {
	out := cmd.OutOrStdout()
	if f, _ := cmd.Flags().GetString("format"); f == formatJSON {
		return writeJSON(out, v)
	}
	_, err := fmt.Fprint(out, text())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
	"github.com/alexanderramin/concierge/internal/importer"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect trip programs",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanListCmd(app),
		newPlanValidateCmd(app),
		newPlanDeleteCmd(app),
	)

	return cmd
}

// generateFlags mirrors the fields of a generate request.
type generateFlags struct {
	user, city, profile, intensity string
	start, end                     string
	days, guests                   int
	interests                      []string
	restaurants, museums           []string
	activities, nightlife          []string
	spa, shopping                  bool
	seed                           uint64
	file                           string
}

func (f *generateFlags) request(cmd *cobra.Command) (app.GenerateRequest, error) {
	req := app.GenerateRequest{
		UserID:               f.user,
		City:                 f.city,
		Duration:             f.days,
		Profile:              f.profile,
		Intensity:            domain.Intensity(f.intensity),
		Interests:            f.interests,
		Guests:               f.guests,
		RestaurantCategories: f.restaurants,
		MuseumCategories:     f.museums,
		ActivityCategories:   f.activities,
		NightlifeCategories:  f.nightlife,
		WantsSpa:             f.spa,
		WantsShopping:        f.shopping,
	}
	if f.start != "" {
		d, err := generation.ParseRequiredDate(f.start, "start_date")
		if err != nil {
			return req, err
		}
		req.StartDate = &d
	}
	if f.end != "" {
		d, err := generation.ParseRequiredDate(f.end, "end_date")
		if err != nil {
			return req, err
		}
		req.EndDate = &d
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		req.Seed = &seed
	}
	return req, nil
}

func (f *generateFlags) overrides(cmd *cobra.Command) importer.Overrides {
	o := importer.Overrides{UserID: f.user}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		o.Seed = &seed
	}
	return o
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new program for a client",
		Long: `Generate a program from flags, from a JSON or YAML request file (--file),
or through an interactive form when no user is given on a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				program *domain.Program
				err     error
			)
			switch {
			case f.file != "":
				program, err = app.Programs.GenerateFromFile(ctx, f.file, f.overrides(cmd))
			case f.user == "" && app.interactive():
				req, werr := runGenerateWizard()
				if werr != nil {
					return werr
				}
				program, err = app.Programs.Generate(ctx, req)
			default:
				req, rerr := f.request(cmd)
				if rerr != nil {
					return rerr
				}
				program, err = app.Programs.Generate(ctx, req)
			}
			if err != nil {
				return err
			}

			return render(cmd, program, func() string {
				return formatter.FormatProgram(program, formatter.AudienceInternal)
			})
		},
	}

	cmd.Flags().StringVar(&f.user, "user", "", "Client user ID")
	cmd.Flags().StringVar(&f.city, "city", "", "Destination city")
	cmd.Flags().IntVar(&f.days, "days", 0, "Trip length in days")
	cmd.Flags().StringVar(&f.start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Client profile label")
	cmd.Flags().StringVar(&f.intensity, "intensity", "", "relaxed, moderate or intense")
	cmd.Flags().IntVar(&f.guests, "guests", 0, "Number of guests")
	cmd.Flags().StringSliceVar(&f.interests, "interests", nil, "Free-form interests")
	cmd.Flags().StringSliceVar(&f.restaurants, "restaurants", nil, "Restaurant tags")
	cmd.Flags().StringSliceVar(&f.museums, "museums", nil, "Museum tags")
	cmd.Flags().StringSliceVar(&f.activities, "activities", nil, "Activity tags")
	cmd.Flags().StringSliceVar(&f.nightlife, "nightlife", nil, "Nightlife tags")
	cmd.Flags().BoolVar(&f.spa, "spa", false, "Include spa slots")
	cmd.Flags().BoolVar(&f.shopping, "shopping", false, "Include shopping slots")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for reproducible venue draws")
	cmd.Flags().StringVar(&f.file, "file", "", "Request file (.json, .yaml)")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var client, pager bool

	cmd := &cobra.Command{
		Use:   "show <program-id>",
		Short: "Show a program day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := app.Programs.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			audience := formatter.AudienceInternal
			if client {
				audience = formatter.AudienceClient
			}
			format, _ := cmd.Flags().GetString("format")
			if pager && format == formatText && app.interactive() {
				return runPager(cmd.InOrStdin(), cmd.OutOrStdout(), program.Title,
					formatter.FormatProgram(program, audience))
			}
			return render(cmd, program, func() string {
				return formatter.FormatProgram(program, audience)
			})
		},
	}

	cmd.Flags().BoolVar(&client, "client", false, "Show the client-facing version")
	cmd.Flags().BoolVar(&pager, "pager", false, "Scroll the program full screen (interactive terminals only)")
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := app.Programs.List(context.Background(), user)
			if err != nil {
				return err
			}
			return render(cmd, programs, func() string {
				return formatter.FormatProgramList(programs)
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Client user ID")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newPlanValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <program-id>",
		Short: "Mark a program as validated once every slot has its selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := app.Programs.Validate(context.Background(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, program, func() string {
				return fmt.Sprintf("%s %s\n", formatter.StatusPill(program.Status), program.Title)
			})
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <program-id>",
		Short: "Delete a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Programs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			return render(cmd, map[string]string{"deleted": args[0]}, func() string {
				return fmt.Sprintf("Deleted program %s\n", args[0])
			})
		},
	}
}

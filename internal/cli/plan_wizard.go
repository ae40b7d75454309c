package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// conciergeHuhTheme returns a huh theme using the Gruvbox palette.
func conciergeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers collects the generate form as raw strings.
type wizardAnswers struct {
	User        string
	City        string
	Days        string
	Start       string
	Intensity   string
	Guests      string
	Profile     string
	Restaurants []string
	Museums     []string
	Activities  []string
	Nightlife   []string
	Spa         bool
	Shopping    bool
}

func newWizardAnswers() *wizardAnswers {
	return &wizardAnswers{
		City:      app.DefaultCity,
		Days:      strconv.Itoa(app.DefaultDuration),
		Intensity: string(app.DefaultIntensity),
		Guests:    strconv.Itoa(app.DefaultGuests),
	}
}

func tagOptions(category domain.Category) []huh.Option[string] {
	return huh.NewOptions(catalog.SubCategories(category)...)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := generation.ParseRequiredDate(strings.TrimSpace(s), "start_date")
	return err
}

func generateForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client user ID").Value(&a.User).Validate(validateRequired),
			huh.NewInput().Title("City").Value(&a.City).Validate(validateRequired),
			huh.NewInput().Title("Days").Value(&a.Days).Validate(validatePositiveInt),
			huh.NewInput().Title("Arrival (YYYY-MM-DD, blank for undated)").Placeholder("2026-06-01").
				Value(&a.Start).Validate(validateOptionalDate),
			huh.NewSelect[string]().Title("Pace").
				Options(huh.NewOptions(
					string(domain.IntensityRelaxed),
					string(domain.IntensityModerate),
					string(domain.IntensityIntense),
				)...).
				Value(&a.Intensity),
			huh.NewInput().Title("Guests").Value(&a.Guests).Validate(validatePositiveInt),
			huh.NewInput().Title("Profile (optional)").Value(&a.Profile),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Restaurants").Options(tagOptions(domain.CategoryRestaurants)...).Value(&a.Restaurants),
			huh.NewMultiSelect[string]().Title("Museums").Options(tagOptions(domain.CategoryMuseums)...).Value(&a.Museums),
			huh.NewMultiSelect[string]().Title("Experiences").Options(tagOptions(domain.CategoryActivities)...).Value(&a.Activities),
			huh.NewMultiSelect[string]().Title("Nightlife").Options(tagOptions(domain.CategoryNightlife)...).Value(&a.Nightlife),
			huh.NewConfirm().Title("Spa").Value(&a.Spa),
			huh.NewConfirm().Title("Shopping").Value(&a.Shopping),
		),
	).WithTheme(conciergeHuhTheme()).WithShowHelp(false)
}

// request turns the answers into a generate request.
func (a *wizardAnswers) request() (app.GenerateRequest, error) {
	days, err := strconv.Atoi(strings.TrimSpace(a.Days))
	if err != nil {
		return app.GenerateRequest{}, fmt.Errorf("invalid days %q", a.Days)
	}
	guests, err := strconv.Atoi(strings.TrimSpace(a.Guests))
	if err != nil {
		return app.GenerateRequest{}, fmt.Errorf("invalid guests %q", a.Guests)
	}
	req := app.GenerateRequest{
		UserID:               strings.TrimSpace(a.User),
		City:                 strings.TrimSpace(a.City),
		Duration:             days,
		Profile:              strings.TrimSpace(a.Profile),
		Intensity:            domain.Intensity(a.Intensity),
		Guests:               guests,
		RestaurantCategories: a.Restaurants,
		MuseumCategories:     a.Museums,
		ActivityCategories:   a.Activities,
		NightlifeCategories:  a.Nightlife,
		WantsSpa:             a.Spa,
		WantsShopping:        a.Shopping,
	}
	if start := strings.TrimSpace(a.Start); start != "" {
		d, err := generation.ParseRequiredDate(start, "start_date")
		if err != nil {
			return app.GenerateRequest{}, err
		}
		req.StartDate = &d
	}
	return req, nil
}

func runGenerateWizard() (app.GenerateRequest, error) {
	answers := newWizardAnswers()
	if err := generateForm(answers).Run(); err != nil {
		return app.GenerateRequest{}, err
	}
	return answers.request()
}

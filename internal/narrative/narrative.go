// Package narrative renders the fixed copy attached to a program: its title,
// the internal and client-facing introductions and closings, and day themes.
package narrative

import (
	"strings"
	"text/template"
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

// Input is what the copy templates may refer to.
type Input struct {
	City      string
	Duration  int
	Profile   string
	Guests    int
	Intensity domain.Intensity
	StartDate *time.Time
	Families  []domain.Category
}

// ProgramCopy is the rendered program-level text.
type ProgramCopy struct {
	Title           string
	IntroInternal   string
	IntroClient     string
	ClosingInternal string
	ClosingClient   string
}

// DayTheme is the rendered text heading one day.
type DayTheme struct {
	Internal string
	Client   string
}

var funcs = template.FuncMap{
	"plural": func(n int, one, many string) string {
		if n > 1 {
			return many
		}
		return one
	},
	"pace":     paceLabel,
	"families": familiesLabel,
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("02/01/2006")
	},
}

var programTemplates = template.Must(template.New("program").Funcs(funcs).Parse(`
{{define "title"}}{{.City}}, {{.Duration}} {{plural .Duration "jour" "jours"}} d'exception{{end}}

{{define "intro_internal"}}Profil {{with .Profile}}{{.}}{{else}}non renseigné{{end}}, {{.Guests}} {{plural .Guests "invité" "invités"}}, rythme {{pace .Intensity}}.
{{- with date .StartDate}} Arrivée le {{.}}.{{end}} Centres d'intérêt : {{families .Families}}.{{end}}

{{define "intro_client"}}Nous avons le plaisir de vous présenter votre séjour de {{.Duration}} {{plural .Duration "jour" "jours"}} à {{.City}}, composé sur mesure pour vous.{{end}}

{{define "closing_internal"}}Vérifier les réservations et confirmer chaque option sélectionnée avant envoi au client.{{end}}

{{define "closing_client"}}Votre concierge reste à votre disposition pour ajuster chaque moment de votre séjour à {{.City}}.{{end}}
`))

type themeCopy struct {
	internal string
	client   string
}

// dayThemes is keyed by the lead category of a day; "" covers days made
// only of meals and rest.
var dayThemes = map[domain.Category]themeCopy{
	domain.CategoryMuseums:    {"Culture et musées", "Les trésors artistiques de {{.City}}"},
	domain.CategoryActivities: {"Expériences", "Des moments inoubliables à {{.City}}"},
	domain.CategorySpas:       {"Bien-être", "Une parenthèse de douceur"},
	domain.CategoryShopping:   {"Shopping", "Les plus belles adresses de {{.City}}"},
	domain.CategoryNightlife:  {"Soirée", "{{.City}} by night"},
	"":                        {"Journée libre", "Une journée à votre rythme"},
}

var dayTemplates = func() map[domain.Category]*template.Template {
	out := make(map[domain.Category]*template.Template, len(dayThemes))
	for c, copy := range dayThemes {
		out[c] = template.Must(template.New(string(c)).Parse(copy.client))
	}
	return out
}()

// Program renders the program-level copy.
func Program(in Input) (ProgramCopy, error) {
	var out ProgramCopy
	for _, part := range []struct {
		name string
		dst  *string
	}{
		{"title", &out.Title},
		{"intro_internal", &out.IntroInternal},
		{"intro_client", &out.IntroClient},
		{"closing_internal", &out.ClosingInternal},
		{"closing_client", &out.ClosingClient},
	} {
		var b strings.Builder
		if err := programTemplates.ExecuteTemplate(&b, part.name, in); err != nil {
			return ProgramCopy{}, err
		}
		*part.dst = b.String()
	}
	return out, nil
}

// Day renders the theme of a day led by category in city. Unknown
// categories use the free-day copy.
func Day(category domain.Category, city string) (DayTheme, error) {
	copy, ok := dayThemes[category]
	if !ok {
		category = ""
		copy = dayThemes[""]
	}
	var b strings.Builder
	if err := dayTemplates[category].Execute(&b, struct{ City string }{city}); err != nil {
		return DayTheme{}, err
	}
	return DayTheme{Internal: copy.internal, Client: b.String()}, nil
}

func paceLabel(i domain.Intensity) string {
	switch i {
	case domain.IntensityRelaxed:
		return "détendu"
	case domain.IntensityIntense:
		return "soutenu"
	default:
		return "modéré"
	}
}

var familyLabels = map[domain.Category]string{
	domain.CategoryMuseums:    "musées",
	domain.CategoryActivities: "expériences",
	domain.CategorySpas:       "spa",
	domain.CategoryShopping:   "shopping",
	domain.CategoryNightlife:  "vie nocturne",
}

func familiesLabel(families []domain.Category) string {
	labels := []string{"gastronomie"}
	for _, f := range families {
		if l, ok := familyLabels[f]; ok {
			labels = append(labels, l)
		}
	}
	return strings.Join(labels, ", ")
}

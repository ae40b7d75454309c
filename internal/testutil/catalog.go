package testutil

import (
	"context"
	"strings"
	"testing/fstest"

	"github.com/alexanderramin/concierge/internal/domain"
)

// StaticLoader serves fixed venues per category.
type StaticLoader map[domain.Category][]domain.Venue

func (l StaticLoader) Load(_ context.Context, category domain.Category) []domain.Venue {
	src := l[category]
	out := make([]domain.Venue, len(src))
	copy(out, src)
	return out
}

// NewStaticLoader groups venues by their category.
func NewStaticLoader(venues ...[]domain.Venue) StaticLoader {
	l := make(StaticLoader)
	for _, group := range venues {
		for _, v := range group {
			l[v.Category] = append(l[v.Category], v)
		}
	}
	return l
}

// NewTestCatalogFS renders venues as semicolon-separated category files with
// French headers. The sub-category is written into the type column so that
// parsing derives it again.
func NewTestCatalogFS(venues ...[]domain.Venue) fstest.MapFS {
	files := make(map[domain.Category]*strings.Builder)
	for _, group := range venues {
		for _, v := range group {
			b, ok := files[v.Category]
			if !ok {
				b = &strings.Builder{}
				b.WriteString("Nom;Type;Adresse;Horaires;Réservation;Vue Tour Eiffel\n")
				files[v.Category] = b
			}
			b.WriteString(strings.Join([]string{
				v.Name,
				v.SubCategory,
				v.Address,
				v.Hours.Text,
				yesNo(v.ReservationRequired),
				yesNo(v.IsEiffelView),
			}, ";"))
			b.WriteString("\n")
		}
	}

	fsys := make(fstest.MapFS, len(files))
	for cat, b := range files {
		fsys[string(cat)+".csv"] = &fstest.MapFile{Data: []byte(b.String())}
	}
	return fsys
}

func yesNo(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}

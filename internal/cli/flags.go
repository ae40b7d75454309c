package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/spf13/pflag"
)

// categoryFlag is a --category value checked against the known categories
// when parsed.
type categoryFlag struct {
	value domain.Category
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string { return string(f.value) }

func (f *categoryFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidCategories[s] {
		return fmt.Errorf("unknown category %q", s)
	}
	f.value = domain.Category(s)
	return nil
}

func (f *categoryFlag) Type() string { return "category" }

// addCategoryFlag registers --category on fs.
func addCategoryFlag(fs *pflag.FlagSet, f *categoryFlag, usage string) {
	fs.Var(f, "category", usage)
}

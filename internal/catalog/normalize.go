package catalog

import (
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
)

type field string

const (
	fieldName        field = "name"
	fieldKind        field = "kind"
	fieldAddress     field = "address"
	fieldPhone       field = "phone"
	fieldHours       field = "hours"
	fieldClosed      field = "closed"
	fieldStyle       field = "style"
	fieldDescription field = "description"
	fieldEiffel      field = "eiffel"
	fieldAppointment field = "appointment"
	fieldReservation field = "reservation"
)

// headerRule maps header text to a field. Keywords match as substrings of
// the folded header, except those starting with "=" which must equal a
// whole word.
type headerRule struct {
	field    field
	keywords []string
}

// Rules are tried in order; the first match wins.
var headerRules = []headerRule{
	{fieldName, []string{"nom", "name", "enseigne"}},
	{fieldKind, []string{"type", "categorie", "specialite", "cuisine", "genre"}},
	{fieldEiffel, []string{"eiffel"}},
	{fieldAppointment, []string{"rendez", "=rdv", "appointment"}},
	{fieldReservation, []string{"reserv", "booking"}},
	{fieldHours, []string{"horaire", "ouverture", "hours", "opening"}},
	{fieldClosed, []string{"ferme", "closed", "fermeture"}},
	{fieldAddress, []string{"adresse", "lieu", "address", "localisation"}},
	{fieldPhone, []string{"telephone", "=tel", "phone", "contact"}},
	{fieldStyle, []string{"style", "ambiance", "atmosphere"}},
	{fieldDescription, []string{"descri", "experience", "concept", "resume", "notes"}},
}

// normalizeHeader resolves the field a raw header column feeds, or "".
func normalizeHeader(raw string) field {
	h := domain.Fold(strings.TrimSpace(raw))
	if h == "" {
		return ""
	}
	for _, rule := range headerRules {
		if containsAny(h, rule.keywords) {
			return rule.field
		}
	}
	return ""
}

// columnMap records which column index feeds each field. The first column
// claiming a field keeps it.
type columnMap map[field]int

func mapColumns(header []string) columnMap {
	cols := make(columnMap)
	for i, h := range header {
		f := normalizeHeader(h)
		if f == "" {
			continue
		}
		if _, taken := cols[f]; !taken {
			cols[f] = i
		}
	}
	return cols
}

// record is one catalog row keyed by normalized field.
type record map[field]string

func (c columnMap) record(row []string) record {
	rec := make(record, len(c))
	for f, i := range c {
		if i < len(row) {
			rec[f] = strings.TrimSpace(row[i])
		}
	}
	return rec
}

// text returns the folded concatenation of the given fields.
func (r record) text(fields ...field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := r[f]; v != "" {
			parts = append(parts, v)
		}
	}
	return domain.Fold(strings.Join(parts, " "))
}

var negatives = map[string]bool{
	"non": true, "no": true, "0": true, "false": true, "faux": true, "-": true, "n/a": true, "aucun": true, "aucune": true,
}

// truthy reports whether a free-text flag column holds an affirmative value.
func truthy(v string) bool {
	f := strings.TrimSpace(domain.Fold(v))
	if f == "" || negatives[f] {
		return false
	}
	return !strings.HasPrefix(f, "non ") && !strings.HasPrefix(f, "no ") && !strings.HasPrefix(f, "pas ")
}

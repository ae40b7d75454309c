package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RequestSchema is a generate request as written in a JSON or YAML file.
type RequestSchema struct {
	UserID    string   `json:"user_id" yaml:"user_id"`
	City      string   `json:"city,omitempty" yaml:"city,omitempty"`
	Duration  *int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Profile   string   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Intensity string   `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Guests    *int     `json:"guests,omitempty" yaml:"guests,omitempty"`
	StartDate *string  `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty"`

	Preferences PreferencesImport `json:"preferences" yaml:"preferences"`

	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// PreferencesImport holds the per-category tags the client picked.
type PreferencesImport struct {
	Restaurants []string `json:"restaurants,omitempty" yaml:"restaurants,omitempty"`
	Museums     []string `json:"museums,omitempty" yaml:"museums,omitempty"`
	Activities  []string `json:"activities,omitempty" yaml:"activities,omitempty"`
	Nightlife   []string `json:"nightlife,omitempty" yaml:"nightlife,omitempty"`
	Spa         bool     `json:"spa,omitempty" yaml:"spa,omitempty"`
	Shopping    bool     `json:"shopping,omitempty" yaml:"shopping,omitempty"`
}

// Overrides are command-line values that win over the file.
type Overrides struct {
	UserID string
	Seed   *uint64
}

// Apply copies the set overrides onto the schema.
func (o Overrides) Apply(s *RequestSchema) {
	if o.UserID != "" {
		s.UserID = o.UserID
	}
	if o.Seed != nil {
		s.Seed = o.Seed
	}
}

// LoadRequestSchema reads a request file. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func LoadRequestSchema(path string) (*RequestSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema RequestSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	default:
		err = json.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	return &schema, nil
}

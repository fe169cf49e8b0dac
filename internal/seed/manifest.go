package seed

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest is the set of records a run writes. Leagues are templates so a
// manifest can be authored once and re-run on any day.
type Manifest struct {
	Leagues []LeagueTemplate `yaml:"leagues"`
	Venues  []Venue          `yaml:"venues"`
}

// DefaultManifest returns the built-in leagues and venues.
func DefaultManifest() *Manifest {
	return &Manifest{
		Leagues: append([]LeagueTemplate(nil), defaultLeagues...),
		Venues:  append([]Venue(nil), defaultVenues...),
	}
}

// LoadManifest reads a YAML manifest from path. See ParseManifest.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(b)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes a YAML manifest. A section that is absent or empty
// falls back to the built-in records for that section.
func ParseManifest(b []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(b, &m, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	defaults := DefaultManifest()
	if len(m.Leagues) == 0 {
		m.Leagues = defaults.Leagues
	}
	if len(m.Venues) == 0 {
		m.Venues = defaults.Venues
	}
	return &m, nil
}

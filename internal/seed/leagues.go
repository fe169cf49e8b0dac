package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/unityleagues/unity-data/internal/config"
	"github.com/unityleagues/unity-data/internal/db"
)

// League is the stored shape of a league document, matching the app's League
// model field for field.
type League struct {
	ID                   string    `firestore:"id"`
	Name                 string    `firestore:"name"`
	Sport                string    `firestore:"sport"`
	Season               string    `firestore:"season"`
	Region               string    `firestore:"region"`
	Description          string    `firestore:"description"`
	StartDate            time.Time `firestore:"startDate"`
	RegistrationDeadline time.Time `firestore:"registrationDeadline"`
	IndividualPrice      float64   `firestore:"individualPrice"`
	TeamPrice            float64   `firestore:"teamPrice"`
	TeamIDs              []string  `firestore:"teamIds"`
	FreeAgentIDs         []string  `firestore:"freeAgentIds"`
	MaxTeams             int       `firestore:"maxTeams"`
	IsActive             bool      `firestore:"isActive"`
}

// LeagueTemplate is an authored league whose dates are day offsets from the
// moment the seed runs.
type LeagueTemplate struct {
	ID                       string  `yaml:"id"`
	Name                     string  `yaml:"name"`
	Sport                    string  `yaml:"sport"`
	Season                   string  `yaml:"season"`
	Region                   string  `yaml:"region"`
	Description              string  `yaml:"description"`
	StartsInDays             int     `yaml:"startsInDays"`
	RegistrationClosesInDays int     `yaml:"registrationClosesInDays"`
	IndividualPrice          float64 `yaml:"individualPrice"`
	TeamPrice                float64 `yaml:"teamPrice"`
	MaxTeams                 int     `yaml:"maxTeams"`
	Inactive                 bool    `yaml:"inactive"`
}

// Build resolves the template's offsets against now. Rosters start empty.
func (t LeagueTemplate) Build(now time.Time) League {
	return League{
		ID:                   t.ID,
		Name:                 t.Name,
		Sport:                t.Sport,
		Season:               t.Season,
		Region:               t.Region,
		Description:          t.Description,
		StartDate:            now.AddDate(0, 0, t.StartsInDays),
		RegistrationDeadline: now.AddDate(0, 0, t.RegistrationClosesInDays),
		IndividualPrice:      t.IndividualPrice,
		TeamPrice:            t.TeamPrice,
		TeamIDs:              []string{},
		FreeAgentIDs:         []string{},
		MaxTeams:             t.MaxTeams,
		IsActive:             !t.Inactive,
	}
}

// BuildLeagues resolves every template against the same clock reading.
func BuildLeagues(templates []LeagueTemplate, now time.Time) []League {
	leagues := make([]League, len(templates))
	for i, t := range templates {
		leagues[i] = t.Build(now)
	}
	return leagues
}

// SeedLeagues upserts each league into the leagues collection keyed by its ID,
// in list order. The list is validated first; nothing is written if any
// record is invalid. The first store error aborts the run.
func SeedLeagues(ctx context.Context, store db.Store, leagues []League, logger *slog.Logger) (Result, error) {
	var result Result

	if err := ValidateLeagues(leagues); err != nil {
		return result, err
	}

	logger.Info("Seeding leagues...", "collection", config.LeaguesCollection, "count", len(leagues))
	for _, l := range leagues {
		if err := store.Set(ctx, config.LeaguesCollection, l.ID, l.document()); err != nil {
			return result, fmt.Errorf("set league %s: %w", l.ID, err)
		}
		result.LeaguesWritten++
		logger.Info("Synced league", "id", l.ID, "name", l.Name)
	}

	logger.Info("Leagues seed complete", "summary", result.Summary())
	return result, nil
}

// document returns the league as stored. Nil rosters become empty arrays so
// the app never decodes a null list.
func (l League) document() League {
	l.TeamIDs = nonNilStrings(l.TeamIDs)
	l.FreeAgentIDs = nonNilStrings(l.FreeAgentIDs)
	return l
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

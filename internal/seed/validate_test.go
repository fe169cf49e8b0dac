package seed_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/unityleagues/unity-data/internal/seed"
)

func validLeague() seed.League {
	return seed.LeagueTemplate{
		ID:                       "league_1",
		Name:                     "Test League",
		Sport:                    "Basketball",
		StartsInDays:             10,
		RegistrationClosesInDays: 5,
		IndividualPrice:          100,
		TeamPrice:                900,
		MaxTeams:                 8,
	}.Build(testNow)
}

func TestValidateLeagues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*seed.League)
		reason string
	}{
		{"empty id", func(l *seed.League) { l.ID = "" }, "id is empty"},
		{"invalid utf8 id", func(l *seed.League) { l.ID = "bad\xff" }, "not valid UTF-8"},
		{"slash in id", func(l *seed.League) { l.ID = "a/b" }, "contains '/'"},
		{"dot id", func(l *seed.League) { l.ID = ".." }, "'.' or '..'"},
		{"reserved id", func(l *seed.League) { l.ID = "__meta__" }, "reserved"},
		{"long id", func(l *seed.League) { l.ID = strings.Repeat("x", 1501) }, "exceeds"},
		{"empty name", func(l *seed.League) { l.Name = " " }, "name is empty"},
		{"unknown sport", func(l *seed.League) { l.Sport = "Quidditch" }, "unknown sport"},
		{"negative individual price", func(l *seed.League) { l.IndividualPrice = -0.01 }, "individual price"},
		{"negative team price", func(l *seed.League) { l.TeamPrice = -5 }, "team price"},
		{"zero max teams", func(l *seed.League) { l.MaxTeams = 0 }, "max teams"},
		{"deadline equals start", func(l *seed.League) { l.RegistrationDeadline = l.StartDate }, "deadline"},
		{"deadline after start", func(l *seed.League) { l.RegistrationDeadline = l.StartDate.AddDate(0, 0, 1) }, "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLeague()
			tt.mutate(&l)

			err := seed.ValidateLeagues([]seed.League{l})
			if !errors.Is(err, seed.ErrInvalidRecord) {
				t.Fatalf("err = %v, want ErrInvalidRecord", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("err = %q, want it to mention %q", err, tt.reason)
			}
		})
	}
}

func TestValidateLeaguesAcceptsFreeLeague(t *testing.T) {
	l := validLeague()
	l.IndividualPrice = 0
	l.TeamPrice = 0

	if err := seed.ValidateLeagues([]seed.League{l}); err != nil {
		t.Fatalf("free league rejected: %v", err)
	}
}

func TestValidateLeaguesReportsEveryProblem(t *testing.T) {
	a := validLeague()
	b := validLeague()
	b.MaxTeams = -1
	b.Sport = ""

	err := seed.ValidateLeagues([]seed.League{a, b})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate id", "unknown sport", "max teams"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestValidateVenues(t *testing.T) {
	base := seed.Venue{ID: "v1", Name: "Park", Sport: "Soccer", Address: "1 Park Rd"}

	tests := []struct {
		name   string
		venues []seed.Venue
		reason string
	}{
		{"empty address", []seed.Venue{{ID: "v1", Name: "Park", Sport: "Soccer"}}, "address is empty"},
		{"unknown sport", []seed.Venue{{ID: "v1", Name: "Park", Sport: "Curling", Address: "x"}}, "unknown sport"},
		{"empty name", []seed.Venue{{ID: "v1", Sport: "Soccer", Address: "x"}}, "name is empty"},
		{"duplicate", []seed.Venue{base, base}, "duplicate id"},
		{"invalid utf8 id", []seed.Venue{{ID: "bad\xff", Name: "Park", Sport: "Soccer", Address: "x"}}, "not valid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := seed.ValidateVenues(tt.venues)
			if !errors.Is(err, seed.ErrInvalidRecord) {
				t.Fatalf("err = %v, want ErrInvalidRecord", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("err = %q, want it to mention %q", err, tt.reason)
			}
		})
	}

	if err := seed.ValidateVenues([]seed.Venue{base}); err != nil {
		t.Errorf("valid venue rejected: %v", err)
	}
	if err := seed.ValidateVenues(nil); err != nil {
		t.Errorf("empty list rejected: %v", err)
	}
}

func TestValidateAcceptsEveryAppSport(t *testing.T) {
	sports := []string{"Soccer", "Basketball", "Hockey", "Tennis", "Volleyball", "Padel", "Other"}

	for i, sport := range sports {
		v := seed.Venue{ID: fmt.Sprintf("v%d", i), Name: "Court", Sport: sport, Address: "1 Rd"}
		if err := seed.ValidateVenues([]seed.Venue{v}); err != nil {
			t.Errorf("venue with sport %s rejected: %v", sport, err)
		}
		if v.Document().ImageName == "" {
			t.Errorf("sport %s has no fallback icon", sport)
		}

		l := validLeague()
		l.Sport = sport
		if err := seed.ValidateLeagues([]seed.League{l}); err != nil {
			t.Errorf("league with sport %s rejected: %v", sport, err)
		}
	}
}

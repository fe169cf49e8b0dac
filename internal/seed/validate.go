package seed

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/unityleagues/unity-data/internal/config"
)

// ErrInvalidRecord is wrapped by every validation failure.
var ErrInvalidRecord = errors.New("invalid seed record")

// Firestore document id limit, in bytes.
const maxDocumentIDBytes = 1500

// ValidateLeagues checks every league and returns all problems joined, or nil.
func ValidateLeagues(leagues []League) error {
	var errs []error
	seen := make(map[string]int, len(leagues))
	for i, l := range leagues {
		errs = append(errs, checkID("league", i, l.ID, seen)...)
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, invalid("league", i, l.ID, "name is empty"))
		}
		if _, ok := config.LookupSport(l.Sport); !ok {
			errs = append(errs, invalid("league", i, l.ID, fmt.Sprintf("unknown sport %q", l.Sport)))
		}
		if l.IndividualPrice < 0 {
			errs = append(errs, invalid("league", i, l.ID, fmt.Sprintf("individual price %.2f is negative", l.IndividualPrice)))
		}
		if l.TeamPrice < 0 {
			errs = append(errs, invalid("league", i, l.ID, fmt.Sprintf("team price %.2f is negative", l.TeamPrice)))
		}
		if l.MaxTeams <= 0 {
			errs = append(errs, invalid("league", i, l.ID, fmt.Sprintf("max teams %d must be positive", l.MaxTeams)))
		}
		if !l.RegistrationDeadline.Before(l.StartDate) {
			errs = append(errs, invalid("league", i, l.ID, "registration deadline is not before start date"))
		}
	}
	return errors.Join(errs...)
}

// ValidateVenues checks every venue and returns all problems joined, or nil.
func ValidateVenues(venues []Venue) error {
	var errs []error
	seen := make(map[string]int, len(venues))
	for i, v := range venues {
		errs = append(errs, checkID("venue", i, v.ID, seen)...)
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, invalid("venue", i, v.ID, "name is empty"))
		}
		if _, ok := config.LookupSport(v.Sport); !ok {
			errs = append(errs, invalid("venue", i, v.ID, fmt.Sprintf("unknown sport %q", v.Sport)))
		}
		if strings.TrimSpace(v.Address) == "" {
			errs = append(errs, invalid("venue", i, v.ID, "address is empty"))
		}
	}
	return errors.Join(errs...)
}

// checkID validates id as a Firestore document id and records it in seen.
func checkID(kind string, index int, id string, seen map[string]int) []error {
	var errs []error
	switch {
	case id == "":
		return []error{invalid(kind, index, id, "id is empty")}
	case !utf8.ValidString(id):
		errs = append(errs, invalid(kind, index, id, "id is not valid UTF-8"))
	case strings.Contains(id, "/"):
		errs = append(errs, invalid(kind, index, id, "id contains '/'"))
	case id == "." || id == "..":
		errs = append(errs, invalid(kind, index, id, "id cannot be '.' or '..'"))
	case len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		errs = append(errs, invalid(kind, index, id, "id matches the reserved __.*__ form"))
	case len(id) > maxDocumentIDBytes:
		errs = append(errs, invalid(kind, index, id, fmt.Sprintf("id exceeds %d bytes", maxDocumentIDBytes)))
	}
	if first, dup := seen[id]; dup {
		errs = append(errs, invalid(kind, index, id, fmt.Sprintf("duplicate id (first at index %d)", first)))
	} else {
		seen[id] = index
	}
	return errs
}

func invalid(kind string, index int, id, reason string) error {
	return fmt.Errorf("%w: %s[%d] %q: %s", ErrInvalidRecord, kind, index, id, reason)
}

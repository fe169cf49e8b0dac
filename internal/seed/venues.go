package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unityleagues/unity-data/internal/config"
)

// Fixed values stamped on every seeded venue. Venues land in the pending
// collection and are reviewed before they go live.
const (
	VenueStatusPending = "pending"
	VenueSourceSeed    = "Manual_GTA_Seed"
)

// Venue is an authored venue entry. ID becomes the document key and is not
// stored in the document itself.
type Venue struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Sport   string `yaml:"sport"`
	Address string `yaml:"address"`
	Image   string `yaml:"img"`
}

// VenueDocument is the stored shape of a pending venue.
type VenueDocument struct {
	Name      string `firestore:"name"`
	Sport     string `firestore:"sport"`
	Address   string `firestore:"address"`
	ImageName string `firestore:"imageName"`
	Status    string `firestore:"status"`
	Source    string `firestore:"source"`
}

// Document returns the stored form of v. A missing image falls back to the
// sport's registry icon.
func (v Venue) Document() VenueDocument {
	image := v.Image
	if image == "" {
		if s, ok := config.LookupSport(v.Sport); ok {
			image = s.Icon
		}
	}
	return VenueDocument{
		Name:      v.Name,
		Sport:     v.Sport,
		Address:   v.Address,
		ImageName: image,
		Status:    VenueStatusPending,
		Source:    VenueSourceSeed,
	}
}

// SeedVenues stages every venue into the pending venues collection through w
// and flushes the tail. The list is validated first; nothing is written if
// any record is invalid. A failed commit aborts the run.
func SeedVenues(ctx context.Context, w *BatchWriter, venues []Venue, logger *slog.Logger) (Result, error) {
	var result Result

	if err := ValidateVenues(venues); err != nil {
		return result, err
	}

	logger.Info("Seeding venues...", "collection", config.PendingVenuesCollection, "count", len(venues))
	commitsBefore := w.Commits()
	for _, v := range venues {
		if err := w.Add(ctx, config.PendingVenuesCollection, v.ID, v.Document()); err != nil {
			return result, fmt.Errorf("queue venue %s: %w", v.ID, err)
		}
		logger.Info("Queued venue", "id", v.ID, "name", v.Name)
	}
	if err := w.Flush(ctx); err != nil {
		return result, fmt.Errorf("flush venues: %w", err)
	}

	result.VenuesWritten = len(venues)
	result.Commits = w.Commits() - commitsBefore
	logger.Info("Venues seed complete",
		"collection", config.PendingVenuesCollection, "summary", result.Summary())
	return result, nil
}

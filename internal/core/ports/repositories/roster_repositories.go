package repositories

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

// VenueRepository persists venues.
type VenueRepository interface {
	SaveVenue(ctx context.Context, venue models.Venue) error
	FindVenueByID(ctx context.Context, venueID string) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, venue models.Venue) error
	DeleteVenue(ctx context.Context, venueID string) error
}

// CCARepository persists the staff roster.
type CCARepository interface {
	SaveCCA(ctx context.Context, cca models.CCA) error
	FindCCAByID(ctx context.Context, ccaID string) (*models.CCA, error)
	ListCCAsByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.CCA, error)
	UpdateCCA(ctx context.Context, cca models.CCA) error
	DeleteCCA(ctx context.Context, ccaID string) error

	// OverwritePoints rewrites the cached balance outright. Reserved for
	// reconciliation repair; regular balance changes go through the
	// LedgerRepository's atomic increments.
	OverwritePoints(ctx context.Context, ccaID string, points decimal.Decimal, updatedBy string) error

	// ListCCAIDsByVenue returns roster ids for venue-wide reconciliation.
	ListCCAIDsByVenue(ctx context.Context, venueID string) ([]string, error)
}

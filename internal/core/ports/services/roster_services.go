package services

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// VenueSvcFacade manages venues.
type VenueSvcFacade interface {
	CreateVenue(ctx context.Context, req dto.CreateVenueRequest, actorID string) (*models.Venue, error)
	GetVenueByID(ctx context.Context, venueID string) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, venueID string, req dto.UpdateVenueRequest, actorID string) (*models.Venue, error)
	DeleteVenue(ctx context.Context, venueID string) error
}

// CCASvcFacade manages the staff roster.
type CCASvcFacade interface {
	CreateCCA(ctx context.Context, req dto.CreateCCARequest, actorID string) (*models.CCA, error)
	GetCCAByID(ctx context.Context, ccaID string) (*models.CCA, error)
	ListCCAsByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.CCA, error)
	UpdateCCA(ctx context.Context, ccaID string, req dto.UpdateCCARequest, actorID string) (*models.CCA, error)
	DeleteCCA(ctx context.Context, ccaID string) error
}

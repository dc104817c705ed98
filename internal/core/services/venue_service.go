package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type venueService struct {
	venueRepo portsrepo.VenueRepository
}

// NewVenueService creates the venue management service.
func NewVenueService(venueRepo portsrepo.VenueRepository) portssvc.VenueSvcFacade {
	return &venueService{venueRepo: venueRepo}
}

var _ portssvc.VenueSvcFacade = (*venueService)(nil)

func (s *venueService) CreateVenue(ctx context.Context, req dto.CreateVenueRequest, actorID string) (*models.Venue, error) {
	now := time.Now().UTC()
	venue := models.Venue{
		VenueID:     uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		IsActive:    true,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.venueRepo.SaveVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return &venue, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	venue, err := s.venueRepo.FindVenueByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", venueID, err)
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	venues, err := s.venueRepo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, venueID string, req dto.UpdateVenueRequest, actorID string) (*models.Venue, error) {
	venue, err := s.venueRepo.FindVenueByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", venueID, err)
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}
	venue.LastUpdatedAt = time.Now().UTC()
	venue.LastUpdatedBy = actorID

	if err := s.venueRepo.UpdateVenue(ctx, *venue); err != nil {
		return nil, fmt.Errorf("failed to update venue %s: %w", venueID, err)
	}
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID string) error {
	if err := s.venueRepo.DeleteVenue(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	return nil
}

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
	"github.com/shopspring/decimal"
)

type ccaService struct {
	ccaRepo   portsrepo.CCARepository
	venueRepo portsrepo.VenueRepository
}

// NewCCAService creates the staff roster service.
func NewCCAService(ccaRepo portsrepo.CCARepository, venueRepo portsrepo.VenueRepository) portssvc.CCASvcFacade {
	return &ccaService{ccaRepo: ccaRepo, venueRepo: venueRepo}
}

var _ portssvc.CCASvcFacade = (*ccaService)(nil)

func (s *ccaService) CreateCCA(ctx context.Context, req dto.CreateCCARequest, actorID string) (*models.CCA, error) {
	if _, err := s.venueRepo.FindVenueByID(ctx, req.VenueID); err != nil {
		return nil, fmt.Errorf("failed to find venue %s: %w", req.VenueID, err)
	}

	now := time.Now().UTC()
	cca := models.CCA{
		CCAID:     uuid.NewString(),
		VenueID:   req.VenueID,
		StageName: req.StageName,
		RealName:  req.RealName,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		PhotoURL:  req.PhotoURL,
		Intro:     req.Intro,
		IsActive:  true,
		Points:    decimal.Zero,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.ccaRepo.SaveCCA(ctx, cca); err != nil {
		return nil, fmt.Errorf("failed to create CCA: %w", err)
	}
	return &cca, nil
}

func (s *ccaService) GetCCAByID(ctx context.Context, ccaID string) (*models.CCA, error) {
	cca, err := s.ccaRepo.FindCCAByID(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get CCA %s: %w", ccaID, err)
	}
	return cca, nil
}

func (s *ccaService) ListCCAsByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.CCA, error) {
	ccas, err := s.ccaRepo.ListCCAsByVenue(ctx, venueID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list CCAs for venue %s: %w", venueID, err)
	}
	return ccas, nil
}

func (s *ccaService) UpdateCCA(ctx context.Context, ccaID string, req dto.UpdateCCARequest, actorID string) (*models.CCA, error) {
	cca, err := s.ccaRepo.FindCCAByID(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get CCA %s: %w", ccaID, err)
	}

	if req.StageName != nil {
		cca.StageName = *req.StageName
	}
	if req.RealName != nil {
		cca.RealName = *req.RealName
	}
	if req.BirthDate != nil {
		cca.BirthDate = *req.BirthDate
	}
	if req.Phone != nil {
		cca.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		cca.PhotoURL = *req.PhotoURL
	}
	if req.Intro != nil {
		cca.Intro = *req.Intro
	}
	if req.IsActive != nil {
		cca.IsActive = *req.IsActive
	}
	cca.LastUpdatedAt = time.Now().UTC()
	cca.LastUpdatedBy = actorID

	// Points is deliberately untouched here: the balance moves only
	// through ledger operations.
	if err := s.ccaRepo.UpdateCCA(ctx, *cca); err != nil {
		return nil, fmt.Errorf("failed to update CCA %s: %w", ccaID, err)
	}
	return cca, nil
}

func (s *ccaService) DeleteCCA(ctx context.Context, ccaID string) error {
	if err := s.ccaRepo.DeleteCCA(ctx, ccaID); err != nil {
		return fmt.Errorf("failed to delete CCA %s: %w", ccaID, err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
	venueRepo    portsrepo.VenueRepository
}

// NewCategoryService creates the category catalog service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, venueRepo portsrepo.VenueRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, venueRepo: venueRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) UpsertCategory(ctx context.Context, venueID string, req dto.UpsertCategoryRequest, actorID string) (string, error) {
	kind := models.CategoryKind(req.Kind)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown category kind %q", apperrors.ErrValidation, req.Kind)
	}
	// Amounts are stored positive; the sign of a category's effect comes
	// from its kind alone.
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	if _, err := s.venueRepo.FindVenueByID(ctx, venueID); err != nil {
		return "", fmt.Errorf("failed to find venue %s: %w", venueID, err)
	}

	categoryID := req.CategoryID
	if categoryID == "" {
		categoryID = uuid.NewString()
	}

	now := time.Now().UTC()
	category := models.PointCategory{
		CategoryID: categoryID,
		VenueID:    venueID,
		Name:       req.Name,
		Amount:     req.Amount,
		Kind:       kind,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.categoryRepo.UpsertCategory(ctx, category); err != nil {
		return "", fmt.Errorf("failed to upsert category %s: %w", categoryID, err)
	}
	return categoryID, nil
}

func (s *categoryService) ListCategories(ctx context.Context, venueID string) ([]models.PointCategory, error) {
	categories, err := s.categoryRepo.ListCategoriesByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for venue %s: %w", venueID, err)
	}
	return categories, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	// Idempotent by contract; existing ledger entries keep their
	// denormalized copy of the category and are never touched.
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type siteService struct {
	siteRepo portsrepo.SiteRepository
}

// NewSiteService creates the gallery/banner/settings service.
func NewSiteService(siteRepo portsrepo.SiteRepository) portssvc.SiteSvcFacade {
	return &siteService{siteRepo: siteRepo}
}

var _ portssvc.SiteSvcFacade = (*siteService)(nil)

func (s *siteService) UpsertGalleryItem(ctx context.Context, req dto.UpsertGalleryItemRequest, actorID string) (*models.GalleryItem, error) {
	itemID := req.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}

	now := time.Now().UTC()
	item := models.GalleryItem{
		ItemID:    itemID,
		VenueID:   req.VenueID,
		Title:     req.Title,
		MediaURL:  req.MediaURL,
		SortOrder: req.SortOrder,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.siteRepo.UpsertGalleryItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to upsert gallery item %s: %w", itemID, err)
	}
	return &item, nil
}

func (s *siteService) ListGalleryItems(ctx context.Context, venueID string) ([]models.GalleryItem, error) {
	items, err := s.siteRepo.ListGalleryItemsByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items for venue %s: %w", venueID, err)
	}
	return items, nil
}

func (s *siteService) DeleteGalleryItem(ctx context.Context, itemID string) error {
	if err := s.siteRepo.DeleteGalleryItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete gallery item %s: %w", itemID, err)
	}
	return nil
}

func (s *siteService) UpsertBanner(ctx context.Context, req dto.UpsertBannerRequest, actorID string) (*models.Banner, error) {
	bannerID := req.BannerID
	if bannerID == "" {
		bannerID = uuid.NewString()
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	banner := models.Banner{
		BannerID:  bannerID,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.siteRepo.UpsertBanner(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to upsert banner %s: %w", bannerID, err)
	}
	return &banner, nil
}

func (s *siteService) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	banners, err := s.siteRepo.ListBanners(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

func (s *siteService) DeleteBanner(ctx context.Context, bannerID string) error {
	if err := s.siteRepo.DeleteBanner(ctx, bannerID); err != nil {
		return fmt.Errorf("failed to delete banner %s: %w", bannerID, err)
	}
	return nil
}

func (s *siteService) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.siteRepo.GetSiteSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Not configured yet; return zero-valued settings.
			return &models.SiteSettings{}, nil
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

func (s *siteService) UpdateSiteSettings(ctx context.Context, req dto.UpdateSiteSettingsRequest, actorID string) (*models.SiteSettings, error) {
	now := time.Now().UTC()
	settings := models.SiteSettings{
		SettingsID:   models.SiteSettingsID,
		SiteTitle:    req.SiteTitle,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		FooterText:   req.FooterText,
		KakaoURL:     req.KakaoURL,
		InstagramURL: req.InstagramURL,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.siteRepo.UpsertSiteSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}
	return &settings, nil
}

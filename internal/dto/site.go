package dto

import (
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// UpsertGalleryItemRequest creates or replaces a gallery item.
type UpsertGalleryItemRequest struct {
	ItemID    string `json:"itemID"`
	VenueID   string `json:"venueID" binding:"required"`
	Title     string `json:"title"`
	MediaURL  string `json:"mediaURL" binding:"required,url"`
	SortOrder int    `json:"sortOrder"`
}

// UpsertBannerRequest creates or replaces a hero banner.
type UpsertBannerRequest struct {
	BannerID  string `json:"bannerID"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageURL" binding:"required,url"`
	LinkURL   string `json:"linkURL" binding:"omitempty,url"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// UpdateSiteSettingsRequest replaces the single site-settings row.
type UpdateSiteSettingsRequest struct {
	SiteTitle    string `json:"siteTitle" binding:"required"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	FooterText   string `json:"footerText"`
	KakaoURL     string `json:"kakaoURL" binding:"omitempty,url"`
	InstagramURL string `json:"instagramURL" binding:"omitempty,url"`
}

// GalleryItemResponse defines the data returned for a gallery item.
type GalleryItemResponse struct {
	ItemID    string `json:"itemID"`
	VenueID   string `json:"venueID"`
	Title     string `json:"title"`
	MediaURL  string `json:"mediaURL"`
	SortOrder int    `json:"sortOrder"`
}

// BannerResponse defines the data returned for a banner.
type BannerResponse struct {
	BannerID  string `json:"bannerID"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageURL"`
	LinkURL   string `json:"linkURL"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

// SiteSettingsResponse defines the data returned for site settings.
type SiteSettingsResponse struct {
	SiteTitle    string `json:"siteTitle"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	FooterText   string `json:"footerText"`
	KakaoURL     string `json:"kakaoURL"`
	InstagramURL string `json:"instagramURL"`
}

// ToGalleryItemResponse converts a models.GalleryItem to its response DTO.
func ToGalleryItemResponse(g *models.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ItemID:    g.ItemID,
		VenueID:   g.VenueID,
		Title:     g.Title,
		MediaURL:  g.MediaURL,
		SortOrder: g.SortOrder,
	}
}

// ToListGalleryItemResponse converts a slice of gallery items to response DTOs.
func ToListGalleryItemResponse(items []models.GalleryItem) []GalleryItemResponse {
	res := make([]GalleryItemResponse, len(items))
	for i, g := range items {
		res[i] = ToGalleryItemResponse(&g)
	}
	return res
}

// ToBannerResponse converts a models.Banner to its response DTO.
func ToBannerResponse(b *models.Banner) BannerResponse {
	return BannerResponse{
		BannerID:  b.BannerID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
	}
}

// ToListBannerResponse converts a slice of banners to response DTOs.
func ToListBannerResponse(banners []models.Banner) []BannerResponse {
	res := make([]BannerResponse, len(banners))
	for i, b := range banners {
		res[i] = ToBannerResponse(&b)
	}
	return res
}

// ToSiteSettingsResponse converts a models.SiteSettings to its response DTO.
func ToSiteSettingsResponse(s *models.SiteSettings) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteTitle:    s.SiteTitle,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		FooterText:   s.FooterText,
		KakaoURL:     s.KakaoURL,
		InstagramURL: s.InstagramURL,
	}
}

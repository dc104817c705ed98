package services

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// ForumSvcFacade manages posts and comments.
type ForumSvcFacade interface {
	CreatePost(ctx context.Context, req dto.CreatePostRequest, authorID string) (*models.Post, error)
	GetPost(ctx context.Context, postID string, countView bool) (*models.Post, error)
	ListPostsByBoard(ctx context.Context, board models.PostBoard) ([]models.Post, error)
	UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest, actorID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string, actorID string) error

	AddComment(ctx context.Context, postID string, req dto.CreateCommentRequest, authorID string) (*models.Comment, error)
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID string, actorID string) error
}

// SiteSvcFacade manages gallery items, banners and site settings.
type SiteSvcFacade interface {
	UpsertGalleryItem(ctx context.Context, req dto.UpsertGalleryItemRequest, actorID string) (*models.GalleryItem, error)
	ListGalleryItems(ctx context.Context, venueID string) ([]models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, itemID string) error

	UpsertBanner(ctx context.Context, req dto.UpsertBannerRequest, actorID string) (*models.Banner, error)
	ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	DeleteBanner(ctx context.Context, bannerID string) error

	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, req dto.UpdateSiteSettingsRequest, actorID string) (*models.SiteSettings, error)
}

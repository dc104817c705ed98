package repositories

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// ForumRepository persists posts and comments.
type ForumRepository interface {
	SavePost(ctx context.Context, post models.Post) error
	// FindPostByID increments the view counter when countView is set.
	FindPostByID(ctx context.Context, postID string, countView bool) (*models.Post, error)
	ListPostsByBoard(ctx context.Context, board models.PostBoard) ([]models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, postID string) error

	SaveComment(ctx context.Context, comment models.Comment) error
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// SiteRepository persists gallery items, hero banners and the single-row
// site settings.
type SiteRepository interface {
	UpsertGalleryItem(ctx context.Context, item models.GalleryItem) error
	ListGalleryItemsByVenue(ctx context.Context, venueID string) ([]models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, itemID string) error

	UpsertBanner(ctx context.Context, banner models.Banner) error
	ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	DeleteBanner(ctx context.Context, bannerID string) error

	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	UpsertSiteSettings(ctx context.Context, settings models.SiteSettings) error
}

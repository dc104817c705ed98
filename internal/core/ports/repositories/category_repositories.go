package repositories

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// CategoryRepository persists the per-venue point/penalty category catalog.
type CategoryRepository interface {
	// UpsertCategory inserts the category, or replaces name/amount/kind
	// when the id already exists. Venue scope is preserved on update.
	UpsertCategory(ctx context.Context, category models.PointCategory) error

	// FindCategoryByID returns apperrors.ErrNotFound when absent.
	FindCategoryByID(ctx context.Context, categoryID string) (*models.PointCategory, error)

	// ListCategoriesByVenue returns the venue's catalog ordered by kind
	// then name. Unknown venue yields an empty slice, not an error.
	ListCategoriesByVenue(ctx context.Context, venueID string) ([]models.PointCategory, error)

	// DeleteCategory removes the category row. Idempotent: deleting an
	// absent id is not an error. Never cascades to ledger entries.
	DeleteCategory(ctx context.Context, categoryID string) error
}

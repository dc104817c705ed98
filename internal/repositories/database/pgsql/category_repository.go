package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates the repository for the category catalog.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// UpsertCategory inserts or replaces a category. On conflict the venue
// scope is intentionally NOT updated: updates replace name/amount/kind only.
func (r *PgxCategoryRepository) UpsertCategory(ctx context.Context, category models.PointCategory) error {
	query := `
		INSERT INTO point_categories (category_id, venue_id, name, amount, kind, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (category_id) DO UPDATE SET
			name = EXCLUDED.name,
			amount = EXCLUDED.amount,
			kind = EXCLUDED.kind,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.VenueID,
		category.Name,
		category.Amount,
		category.Kind,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*models.PointCategory, error) {
	query := `
		SELECT category_id, venue_id, name, amount, kind, created_at, created_by, last_updated_at, last_updated_by
		FROM point_categories
		WHERE category_id = $1;
	`
	var category models.PointCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.VenueID,
		&category.Name,
		&category.Amount,
		&category.Kind,
		&category.CreatedAt,
		&category.CreatedBy,
		&category.LastUpdatedAt,
		&category.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by id %s: %w", categoryID, err)
	}

	return &category, nil
}

// ListCategoriesByVenue retrieves a venue's catalog ordered by kind, name.
func (r *PgxCategoryRepository) ListCategoriesByVenue(ctx context.Context, venueID string) ([]models.PointCategory, error) {
	query := `
		SELECT category_id, venue_id, name, amount, kind, created_at, created_by, last_updated_at, last_updated_by
		FROM point_categories
		WHERE venue_id = $1
		ORDER BY kind, name;
	`
	rows, err := r.Pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PointCategory, error) {
		var c models.PointCategory
		err := row.Scan(
			&c.CategoryID,
			&c.VenueID,
			&c.Name,
			&c.Amount,
			&c.Kind,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes the category row. Missing ids are not an error,
// and ledger entries referencing the category are never touched (their
// category_id FK is set null by the schema).
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM point_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

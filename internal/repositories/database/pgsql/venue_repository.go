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

type PgxVenueRepository struct {
	BaseRepository
}

// newPgxVenueRepository creates the repository for venue data.
func newPgxVenueRepository(pool *pgxpool.Pool) portsrepo.VenueRepository {
	return &PgxVenueRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VenueRepository = (*PgxVenueRepository)(nil)

const venueColumns = `venue_id, name, address, phone, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanVenue(row pgx.Row) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.VenueID,
		&v.Name,
		&v.Address,
		&v.Phone,
		&v.Description,
		&v.IsActive,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	return v, err
}

func (r *PgxVenueRepository) SaveVenue(ctx context.Context, venue models.Venue) error {
	query := `
		INSERT INTO venues (` + venueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		venue.VenueID,
		venue.Name,
		venue.Address,
		venue.Phone,
		venue.Description,
		venue.IsActive,
		venue.CreatedAt,
		venue.CreatedBy,
		venue.LastUpdatedAt,
		venue.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save venue %s: %w", venue.VenueID, err)
	}
	return nil
}

func (r *PgxVenueRepository) FindVenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE venue_id = $1;`
	venue, err := scanVenue(r.Pool.QueryRow(ctx, query, venueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find venue by id %s: %w", venueID, err)
	}
	return &venue, nil
}

func (r *PgxVenueRepository) ListVenues(ctx context.Context) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	venues, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Venue, error) {
		return scanVenue(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan venues: %w", err)
	}
	return venues, nil
}

func (r *PgxVenueRepository) UpdateVenue(ctx context.Context, venue models.Venue) error {
	query := `
		UPDATE venues SET
			name = $2,
			address = $3,
			phone = $4,
			description = $5,
			is_active = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE venue_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		venue.VenueID,
		venue.Name,
		venue.Address,
		venue.Phone,
		venue.Description,
		venue.IsActive,
		venue.LastUpdatedAt,
		venue.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update venue %s: %w", venue.VenueID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVenueRepository) DeleteVenue(ctx context.Context, venueID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM venues WHERE venue_id = $1;`, venueID)
	if err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	return nil
}

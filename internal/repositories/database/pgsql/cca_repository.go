package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

type PgxCCARepository struct {
	BaseRepository
}

// newPgxCCARepository creates the repository for the staff roster.
func newPgxCCARepository(pool *pgxpool.Pool) portsrepo.CCARepository {
	return &PgxCCARepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CCARepository = (*PgxCCARepository)(nil)

const ccaColumns = `cca_id, venue_id, stage_name, real_name, birth_date, phone, photo_url, intro, is_active, points, created_at, created_by, last_updated_at, last_updated_by`

func scanCCA(row pgx.Row) (models.CCA, error) {
	var c models.CCA
	err := row.Scan(
		&c.CCAID,
		&c.VenueID,
		&c.StageName,
		&c.RealName,
		&c.BirthDate,
		&c.Phone,
		&c.PhotoURL,
		&c.Intro,
		&c.IsActive,
		&c.Points,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCCARepository) SaveCCA(ctx context.Context, cca models.CCA) error {
	query := `
		INSERT INTO ccas (` + ccaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		cca.CCAID,
		cca.VenueID,
		cca.StageName,
		cca.RealName,
		cca.BirthDate,
		cca.Phone,
		cca.PhotoURL,
		cca.Intro,
		cca.IsActive,
		cca.Points,
		cca.CreatedAt,
		cca.CreatedBy,
		cca.LastUpdatedAt,
		cca.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save CCA %s: %w", cca.CCAID, err)
	}
	return nil
}

func (r *PgxCCARepository) FindCCAByID(ctx context.Context, ccaID string) (*models.CCA, error) {
	query := `SELECT ` + ccaColumns + ` FROM ccas WHERE cca_id = $1;`
	cca, err := scanCCA(r.Pool.QueryRow(ctx, query, ccaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find CCA by id %s: %w", ccaID, err)
	}
	return &cca, nil
}

func (r *PgxCCARepository) ListCCAsByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.CCA, error) {
	query := `SELECT ` + ccaColumns + ` FROM ccas WHERE venue_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY stage_name;`

	rows, err := r.Pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query CCAs for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	ccas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CCA, error) {
		return scanCCA(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan CCAs: %w", err)
	}
	return ccas, nil
}

// UpdateCCA writes profile fields only. Points is deliberately excluded:
// balance changes happen through the ledger repository's atomic increments
// or through OverwritePoints during reconciliation.
func (r *PgxCCARepository) UpdateCCA(ctx context.Context, cca models.CCA) error {
	query := `
		UPDATE ccas SET
			stage_name = $2,
			real_name = $3,
			birth_date = $4,
			phone = $5,
			photo_url = $6,
			intro = $7,
			is_active = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE cca_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		cca.CCAID,
		cca.StageName,
		cca.RealName,
		cca.BirthDate,
		cca.Phone,
		cca.PhotoURL,
		cca.Intro,
		cca.IsActive,
		cca.LastUpdatedAt,
		cca.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update CCA %s: %w", cca.CCAID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCCA removes a roster record outright. A CCA referenced by ledger
// entries, attendance or a user account cannot be hard-deleted; such rows
// should be deactivated via UpdateCCA instead.
func (r *PgxCCARepository) DeleteCCA(ctx context.Context, ccaID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM ccas WHERE cca_id = $1;`, ccaID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: CCA %s has ledger, attendance or account records; deactivate it instead", apperrors.ErrValidation, ccaID)
		}
		return fmt.Errorf("failed to delete CCA %s: %w", ccaID, err)
	}
	return nil
}

func (r *PgxCCARepository) OverwritePoints(ctx context.Context, ccaID string, points decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE ccas SET points = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cca_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, ccaID, points, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to overwrite points for CCA %s: %w", ccaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCCARepository) ListCCAIDsByVenue(ctx context.Context, venueID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT cca_id FROM ccas WHERE venue_id = $1;`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query CCA ids for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan CCA ids: %w", err)
	}
	return ids, nil
}

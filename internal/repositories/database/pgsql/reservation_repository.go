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
)

type PgxReservationRepository struct {
	BaseRepository
}

// newPgxReservationRepository creates the repository for bookings.
func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepository {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationRepository = (*PgxReservationRepository)(nil)

const reservationColumns = `reservation_id, venue_id, cca_id, customer_name, customer_phone, party_size, reserved_at, status, note, created_at, created_by, last_updated_at, last_updated_by`

func scanReservation(row pgx.Row) (models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(
		&res.ReservationID,
		&res.VenueID,
		&res.CCAID,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.PartySize,
		&res.ReservedAt,
		&res.Status,
		&res.Note,
		&res.CreatedAt,
		&res.CreatedBy,
		&res.LastUpdatedAt,
		&res.LastUpdatedBy,
	)
	return res, err
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation models.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		reservation.ReservationID,
		reservation.VenueID,
		reservation.CCAID,
		reservation.CustomerName,
		reservation.CustomerPhone,
		reservation.PartySize,
		reservation.ReservedAt,
		reservation.Status,
		reservation.Note,
		reservation.CreatedAt,
		reservation.CreatedBy,
		reservation.LastUpdatedAt,
		reservation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation %s: %w", reservation.ReservationID, err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1;`
	reservation, err := scanReservation(r.Pool.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation by id %s: %w", reservationID, err)
	}
	return &reservation, nil
}

func (r *PgxReservationRepository) ListReservationsByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE venue_id = $1 AND reserved_at >= $2 AND reserved_at < $3
		ORDER BY reserved_at;
	`
	rows, err := r.Pool.Query(ctx, query, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Reservation, error) {
		return scanReservation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}
	return reservations, nil
}

func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation models.Reservation) error {
	query := `
		UPDATE reservations SET
			cca_id = $2,
			party_size = $3,
			reserved_at = $4,
			status = $5,
			note = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE reservation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		reservation.ReservationID,
		reservation.CCAID,
		reservation.PartySize,
		reservation.ReservedAt,
		reservation.Status,
		reservation.Note,
		reservation.LastUpdatedAt,
		reservation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservation.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReservationRepository) DeleteReservation(ctx context.Context, reservationID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1;`, reservationID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", reservationID, err)
	}
	return nil
}

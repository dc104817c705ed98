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

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates the repository for working shifts.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepository {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepository = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `attendance_id, cca_id, venue_id, work_date, check_in_at, check_out_at, note`

func scanAttendance(row pgx.Row) (models.Attendance, error) {
	var a models.Attendance
	err := row.Scan(
		&a.AttendanceID,
		&a.CCAID,
		&a.VenueID,
		&a.WorkDate,
		&a.CheckInAt,
		&a.CheckOutAt,
		&a.Note,
	)
	return a, err
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, attendance models.Attendance) error {
	query := `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		attendance.AttendanceID,
		attendance.CCAID,
		attendance.VenueID,
		attendance.WorkDate,
		attendance.CheckInAt,
		attendance.CheckOutAt,
		attendance.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance %s: %w", attendance.AttendanceID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) FindOpenShift(ctx context.Context, ccaID string, workDate time.Time) (*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE cca_id = $1 AND work_date = $2 AND check_out_at IS NULL;
	`
	attendance, err := scanAttendance(r.Pool.QueryRow(ctx, query, ccaID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open shift for CCA %s: %w", ccaID, err)
	}
	return &attendance, nil
}

func (r *PgxAttendanceRepository) CloseShift(ctx context.Context, attendanceID string, checkOutAt time.Time) error {
	query := `UPDATE attendance SET check_out_at = $2 WHERE attendance_id = $1 AND check_out_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, attendanceID, checkOutAt)
	if err != nil {
		return fmt.Errorf("failed to close shift %s: %w", attendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAttendanceRepository) ListAttendanceByCCA(ctx context.Context, ccaID string, from, to time.Time) ([]models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE cca_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ccaID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for CCA %s: %w", ccaID, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Attendance, error) {
		return scanAttendance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance records: %w", err)
	}
	return records, nil
}

func (r *PgxAttendanceRepository) ListAttendanceByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE venue_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date DESC, check_in_at;
	`
	rows, err := r.Pool.Query(ctx, query, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Attendance, error) {
		return scanAttendance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance records: %w", err)
	}
	return records, nil
}

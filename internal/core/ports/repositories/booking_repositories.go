package repositories

import (
	"context"
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// ReservationRepository persists customer bookings.
type ReservationRepository interface {
	SaveReservation(ctx context.Context, reservation models.Reservation) error
	FindReservationByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	ListReservationsByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Reservation, error)
	UpdateReservation(ctx context.Context, reservation models.Reservation) error
	DeleteReservation(ctx context.Context, reservationID string) error
}

// AttendanceRepository persists CCA working shifts.
type AttendanceRepository interface {
	SaveAttendance(ctx context.Context, attendance models.Attendance) error
	// FindOpenShift returns the CCA's checked-in, not-yet-checked-out
	// record for the given work date, or apperrors.ErrNotFound.
	FindOpenShift(ctx context.Context, ccaID string, workDate time.Time) (*models.Attendance, error)
	CloseShift(ctx context.Context, attendanceID string, checkOutAt time.Time) error
	ListAttendanceByCCA(ctx context.Context, ccaID string, from, to time.Time) ([]models.Attendance, error)
	ListAttendanceByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Attendance, error)
}

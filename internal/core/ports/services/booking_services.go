package services

import (
	"context"
	"time"

	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// ReservationSvcFacade manages customer bookings.
type ReservationSvcFacade interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, actorID string) (*models.Reservation, error)
	GetReservationByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	ListReservationsByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Reservation, error)
	UpdateReservation(ctx context.Context, reservationID string, req dto.UpdateReservationRequest, actorID string) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

// AttendanceSvcFacade manages CCA shift check-in/check-out.
type AttendanceSvcFacade interface {
	// CheckIn opens a shift; a second check-in on the same work date
	// without a check-out fails with ErrDuplicate.
	CheckIn(ctx context.Context, ccaID string, req dto.CheckInRequest) (*models.Attendance, error)

	// CheckOut closes the open shift for the work date; no open shift
	// fails with ErrNotFound.
	CheckOut(ctx context.Context, ccaID string, workDate time.Time) (*models.Attendance, error)

	ListAttendanceByCCA(ctx context.Context, ccaID string, from, to time.Time) ([]models.Attendance, error)
	ListAttendanceByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Attendance, error)
}

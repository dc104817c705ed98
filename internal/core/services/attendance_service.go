package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepository
	ccaRepo        portsrepo.CCARepository
}

// NewAttendanceService creates the shift check-in/check-out service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepository, ccaRepo portsrepo.CCARepository) portssvc.AttendanceSvcFacade {
	return &attendanceService{attendanceRepo: attendanceRepo, ccaRepo: ccaRepo}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// workDateOf truncates to the business date in UTC.
func workDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *attendanceService) CheckIn(ctx context.Context, ccaID string, req dto.CheckInRequest) (*models.Attendance, error) {
	if _, err := s.ccaRepo.FindCCAByID(ctx, ccaID); err != nil {
		return nil, fmt.Errorf("failed to find CCA %s: %w", ccaID, err)
	}

	now := time.Now().UTC()
	workDate := workDateOf(now)
	if req.WorkDate != nil {
		workDate = workDateOf(*req.WorkDate)
	}

	if open, err := s.attendanceRepo.FindOpenShift(ctx, ccaID, workDate); err == nil && open != nil {
		return nil, fmt.Errorf("%w: shift already open for %s", apperrors.ErrDuplicate, workDate.Format("2006-01-02"))
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check open shift: %w", err)
	}

	attendance := models.Attendance{
		AttendanceID: uuid.NewString(),
		CCAID:        ccaID,
		VenueID:      req.VenueID,
		WorkDate:     workDate,
		CheckInAt:    now,
		Note:         req.Note,
	}

	if err := s.attendanceRepo.SaveAttendance(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to check in: %w", err)
	}
	return &attendance, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, ccaID string, workDate time.Time) (*models.Attendance, error) {
	open, err := s.attendanceRepo.FindOpenShift(ctx, ccaID, workDateOf(workDate))
	if err != nil {
		return nil, fmt.Errorf("failed to find open shift: %w", err)
	}

	now := time.Now().UTC()
	if err := s.attendanceRepo.CloseShift(ctx, open.AttendanceID, now); err != nil {
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	open.CheckOutAt.Time = now
	open.CheckOutAt.Valid = true
	return open, nil
}

func (s *attendanceService) ListAttendanceByCCA(ctx context.Context, ccaID string, from, to time.Time) ([]models.Attendance, error) {
	records, err := s.attendanceRepo.ListAttendanceByCCA(ctx, ccaID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for CCA %s: %w", ccaID, err)
	}
	return records, nil
}

func (s *attendanceService) ListAttendanceByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Attendance, error) {
	records, err := s.attendanceRepo.ListAttendanceByVenue(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for venue %s: %w", venueID, err)
	}
	return records, nil
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type reservationService struct {
	reservationRepo portsrepo.ReservationRepository
	venueRepo       portsrepo.VenueRepository
}

// NewReservationService creates the booking service.
func NewReservationService(reservationRepo portsrepo.ReservationRepository, venueRepo portsrepo.VenueRepository) portssvc.ReservationSvcFacade {
	return &reservationService{reservationRepo: reservationRepo, venueRepo: venueRepo}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, actorID string) (*models.Reservation, error) {
	if _, err := s.venueRepo.FindVenueByID(ctx, req.VenueID); err != nil {
		return nil, fmt.Errorf("failed to find venue %s: %w", req.VenueID, err)
	}
	if req.ReservedAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: reservation time is in the past", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	reservation := models.Reservation{
		ReservationID: uuid.NewString(),
		VenueID:       req.VenueID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		ReservedAt:    req.ReservedAt,
		Status:        models.ReservationRequested,
		Note:          req.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if req.CCAID != "" {
		reservation.CCAID = sql.NullString{String: req.CCAID, Valid: true}
	}

	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return &reservation, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation %s: %w", reservationID, err)
	}
	return reservation, nil
}

func (s *reservationService) ListReservationsByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Reservation, error) {
	reservations, err := s.reservationRepo.ListReservationsByVenue(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for venue %s: %w", venueID, err)
	}
	return reservations, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req dto.UpdateReservationRequest, actorID string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation %s: %w", reservationID, err)
	}

	if req.CCAID != nil {
		if *req.CCAID == "" {
			reservation.CCAID = sql.NullString{}
		} else {
			reservation.CCAID = sql.NullString{String: *req.CCAID, Valid: true}
		}
	}
	if req.PartySize != nil {
		reservation.PartySize = *req.PartySize
	}
	if req.ReservedAt != nil {
		reservation.ReservedAt = *req.ReservedAt
	}
	if req.Status != nil {
		reservation.Status = models.ReservationStatus(*req.Status)
	}
	if req.Note != nil {
		reservation.Note = *req.Note
	}
	reservation.LastUpdatedAt = time.Now().UTC()
	reservation.LastUpdatedBy = actorID

	if err := s.reservationRepo.UpdateReservation(ctx, *reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation %s: %w", reservationID, err)
	}
	return reservation, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	if err := s.reservationRepo.DeleteReservation(ctx, reservationID); err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", reservationID, err)
	}
	return nil
}

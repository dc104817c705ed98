package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// CreateReservationRequest defines the data needed to book a visit.
type CreateReservationRequest struct {
	VenueID       string    `json:"venueID" binding:"required"`
	CCAID         string    `json:"ccaID"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	PartySize     int       `json:"partySize" binding:"required,gte=1"`
	ReservedAt    time.Time `json:"reservedAt" binding:"required"`
	Note          string    `json:"note"`
}

// UpdateReservationRequest defines the updatable reservation fields.
type UpdateReservationRequest struct {
	CCAID      *string    `json:"ccaID"`
	PartySize  *int       `json:"partySize" binding:"omitempty,gte=1"`
	ReservedAt *time.Time `json:"reservedAt"`
	Status     *string    `json:"status" binding:"omitempty,oneof=requested confirmed seated cancelled completed"`
	Note       *string    `json:"note"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID string    `json:"reservationID"`
	VenueID       string    `json:"venueID"`
	CCAID         string    `json:"ccaID,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	PartySize     int       `json:"partySize"`
	ReservedAt    time.Time `json:"reservedAt"`
	Status        string    `json:"status"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToReservationResponse converts a models.Reservation to its response DTO.
func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ReservationID: r.ReservationID,
		VenueID:       r.VenueID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		ReservedAt:    r.ReservedAt,
		Status:        string(r.Status),
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
	}
	if r.CCAID.Valid {
		resp.CCAID = r.CCAID.String
	}
	return resp
}

// ToListReservationResponse converts a slice of reservations to response DTOs.
func ToListReservationResponse(reservations []models.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		res[i] = ToReservationResponse(&r)
	}
	return res
}

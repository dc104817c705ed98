package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// CreateVenueRequest defines the data needed to create a venue.
type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// UpdateVenueRequest defines the updatable venue fields.
type UpdateVenueRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// VenueResponse defines the data returned for a venue.
type VenueResponse struct {
	VenueID     string    `json:"venueID"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToVenueResponse converts a models.Venue to its response DTO.
func ToVenueResponse(v *models.Venue) VenueResponse {
	return VenueResponse{
		VenueID:     v.VenueID,
		Name:        v.Name,
		Address:     v.Address,
		Phone:       v.Phone,
		Description: v.Description,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}

// ToListVenueResponse converts a slice of venues to response DTOs.
func ToListVenueResponse(venues []models.Venue) []VenueResponse {
	res := make([]VenueResponse, len(venues))
	for i, v := range venues {
		res[i] = ToVenueResponse(&v)
	}
	return res
}

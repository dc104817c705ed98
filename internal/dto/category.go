package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

// UpsertCategoryRequest creates a category when ID is empty, otherwise
// replaces name/amount/kind for the existing one.
type UpsertCategoryRequest struct {
	CategoryID string          `json:"id"`
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Kind       string          `json:"type" binding:"required,oneof=point penalty"`
}

// CategoryMutationResponse is returned by category upsert/delete.
type CategoryMutationResponse struct {
	Success    bool   `json:"success"`
	CategoryID string `json:"id,omitempty"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string          `json:"id"`
	VenueID       string          `json:"venueID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a models.PointCategory to its response DTO.
func ToCategoryResponse(cat *models.PointCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		VenueID:       cat.VenueID,
		Name:          cat.Name,
		Amount:        cat.Amount,
		Kind:          string(cat.Kind),
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []models.PointCategory) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}

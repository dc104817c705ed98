package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/nitelabs/venue_crm_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCCARequest defines the data needed to add a CCA to the roster.
type CreateCCARequest struct {
	VenueID   string    `json:"venueID" binding:"required"`
	StageName string    `json:"stageName" binding:"required"`
	RealName  string    `json:"realName"`
	BirthDate time.Time `json:"birthDate" binding:"required"`
	Phone     string    `json:"phone"`
	PhotoURL  string    `json:"photoURL"`
	Intro     string    `json:"intro"`
}

// UpdateCCARequest defines the updatable profile fields. Points is absent
// on purpose: the balance is only mutated through ledger operations.
type UpdateCCARequest struct {
	StageName *string    `json:"stageName"`
	RealName  *string    `json:"realName"`
	BirthDate *time.Time `json:"birthDate"`
	Phone     *string    `json:"phone"`
	PhotoURL  *string    `json:"photoURL"`
	Intro     *string    `json:"intro"`
	IsActive  *bool      `json:"isActive"`
}

// CCAResponse is the admin-facing view of a CCA, including the cached
// points balance and profile fields derived from the birth date.
type CCAResponse struct {
	CCAID         string          `json:"ccaID"`
	VenueID       string          `json:"venueID"`
	StageName     string          `json:"stageName"`
	RealName      string          `json:"realName"`
	BirthDate     time.Time       `json:"birthDate"`
	Age           int             `json:"age"`
	Zodiac        string          `json:"zodiac"`
	ChineseZodiac string          `json:"chineseZodiac"`
	Phone         string          `json:"phone"`
	PhotoURL      string          `json:"photoURL"`
	Intro         string          `json:"intro"`
	IsActive      bool            `json:"isActive"`
	Points        decimal.Decimal `json:"points"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PublicCCAResponse is the visitor-facing view: no real name, phone or
// balance.
type PublicCCAResponse struct {
	CCAID         string `json:"ccaID"`
	VenueID       string `json:"venueID"`
	StageName     string `json:"stageName"`
	Age           int    `json:"age"`
	Zodiac        string `json:"zodiac"`
	ChineseZodiac string `json:"chineseZodiac"`
	PhotoURL      string `json:"photoURL"`
	Intro         string `json:"intro"`
}

// ToCCAResponse converts a models.CCA to its admin response DTO.
func ToCCAResponse(c *models.CCA) CCAResponse {
	now := time.Now()
	return CCAResponse{
		CCAID:         c.CCAID,
		VenueID:       c.VenueID,
		StageName:     c.StageName,
		RealName:      c.RealName,
		BirthDate:     c.BirthDate,
		Age:           utils.Age(c.BirthDate, now),
		Zodiac:        utils.WesternZodiac(c.BirthDate),
		ChineseZodiac: utils.ChineseZodiac(c.BirthDate),
		Phone:         c.Phone,
		PhotoURL:      c.PhotoURL,
		Intro:         c.Intro,
		IsActive:      c.IsActive,
		Points:        c.Points,
		CreatedAt:     c.CreatedAt,
	}
}

// ToListCCAResponse converts a slice of CCAs to admin response DTOs.
func ToListCCAResponse(ccas []models.CCA) []CCAResponse {
	res := make([]CCAResponse, len(ccas))
	for i, c := range ccas {
		res[i] = ToCCAResponse(&c)
	}
	return res
}

// ToPublicCCAResponse converts a models.CCA to its public response DTO.
func ToPublicCCAResponse(c *models.CCA) PublicCCAResponse {
	now := time.Now()
	return PublicCCAResponse{
		CCAID:         c.CCAID,
		VenueID:       c.VenueID,
		StageName:     c.StageName,
		Age:           utils.Age(c.BirthDate, now),
		Zodiac:        utils.WesternZodiac(c.BirthDate),
		ChineseZodiac: utils.ChineseZodiac(c.BirthDate),
		PhotoURL:      c.PhotoURL,
		Intro:         c.Intro,
	}
}

// ToListPublicCCAResponse converts a slice of CCAs to public response DTOs.
func ToListPublicCCAResponse(ccas []models.CCA) []PublicCCAResponse {
	res := make([]PublicCCAResponse, len(ccas))
	for i, c := range ccas {
		res[i] = ToPublicCCAResponse(&c)
	}
	return res
}

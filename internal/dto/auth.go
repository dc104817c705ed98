package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// RegisterRequest defines the data needed to create an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin cca"`
	CCAID    string `json:"ccaID"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token; the refresh token travels in an
// http-only cookie.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// UserResponse defines the data returned for a user account.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CCAID     string    `json:"ccaID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a models.User to its response DTO.
func ToUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.CCAID.Valid {
		resp.CCAID = u.CCAID.String
	}
	return resp
}

package services

import (
	"context"
	"time"

	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// UserSvcFacade manages accounts and credential verification. Passwords
// are bcrypt-hashed at registration; plaintext never leaves the service.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest, actorID string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string, actorID string) error

	// Authenticate verifies username/password, returning ErrUnauthorized
	// on any mismatch.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// StoreRefreshToken persists the hash of a newly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, rawToken string, expiry time.Time) error

	// ValidateRefreshToken checks a presented raw token against the stored
	// hash and expiry, returning the user on success.
	ValidateRefreshToken(ctx context.Context, userID, rawToken string) (*models.User, error)

	// ClearRefreshToken invalidates the user's refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

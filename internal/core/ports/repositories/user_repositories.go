package repositories

import (
	"context"
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// UserRepository persists user accounts and their refresh-token state.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error

	// UpdateRefreshToken stores the SHA-256 hash of the user's current
	// refresh token; nil hash clears it (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiryTime *time.Time) error
}

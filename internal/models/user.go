package models

import (
	"database/sql"
	"time"
)

// UserRole is the privilege tier of an authenticated user.
type UserRole string

const (
	RoleAdmin UserRole = "admin" // Venue/site administrator
	RoleCCA   UserRole = "cca"   // Staff self-service portal
)

// User represents an authenticated account. Credentials are stored as a
// bcrypt hash; CCAID links portal accounts to their staff record.
type User struct {
	UserID       string         `db:"user_id" json:"userID"`
	Username     string         `db:"username" json:"username"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Name         string         `db:"name" json:"name"`
	Role         UserRole       `db:"role" json:"role"`
	CCAID        sql.NullString `db:"cca_id" json:"-"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`

	// Refresh token fields; only the SHA-256 hash is persisted.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash" json:"-"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time" json:"-"`
}

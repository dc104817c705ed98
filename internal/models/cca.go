package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CCA represents a staff member (entertainer/host) affiliated with a venue.
//
// Points is the denormalized running payroll balance. It is a cache over the
// ledger: it must only ever be mutated through ledger operations, via an
// atomic `points = points + delta` statement, never written directly.
type CCA struct {
	CCAID     string          `db:"cca_id" json:"ccaID"`
	VenueID   string          `db:"venue_id" json:"venueID"`
	StageName string          `db:"stage_name" json:"stageName"`
	RealName  string          `db:"real_name" json:"realName"`
	BirthDate time.Time       `db:"birth_date" json:"birthDate"`
	Phone     string          `db:"phone" json:"phone"`
	PhotoURL  string          `db:"photo_url" json:"photoURL"` // Opaque URL from external media storage
	Intro     string          `db:"intro" json:"intro"`
	IsActive  bool            `db:"is_active" json:"isActive"`
	Points    decimal.Decimal `db:"points" json:"points"`
	AuditFields
}

package models

import "github.com/shopspring/decimal"

// CategoryKind distinguishes rewards from deductions.
type CategoryKind string

const (
	KindPoint   CategoryKind = "point"
	KindPenalty CategoryKind = "penalty"
)

// Valid reports whether k is one of the known kinds.
func (k CategoryKind) Valid() bool {
	return k == KindPoint || k == KindPenalty
}

// PointCategory is a named rule for awarding or deducting payroll value,
// scoped to a venue.
//
// Amount is always stored positive; the sign of its effect on a CCA balance
// is determined solely by Kind.
type PointCategory struct {
	CategoryID string          `db:"category_id" json:"categoryID"`
	VenueID    string          `db:"venue_id" json:"venueID"`
	Name       string          `db:"name" json:"name"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Kind       CategoryKind    `db:"kind" json:"kind"`
	AuditFields
}

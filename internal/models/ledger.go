package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one recorded application of a category to a CCA.
//
// Name, Amount and Kind are copied from the category at creation time and
// never re-derived: past entries reflect the rate in effect when they were
// recorded, even if the category is later edited or deleted. Total is
// computed once at write time (Amount * Quantity) and is immutable.
// CategoryID becomes nil when the category is deleted; the entry survives.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id" json:"entryID"`
	CCAID       string          `db:"cca_id" json:"ccaID"`
	CategoryID  *string         `db:"category_id" json:"categoryID,omitempty"`
	Name        string          `db:"name" json:"name"`
	Amount      decimal.Decimal `db:"amount" json:"amount"` // Per-unit rate at recording time
	Quantity    int             `db:"quantity" json:"quantity"`
	Total       decimal.Decimal `db:"total" json:"total"`
	Kind        CategoryKind    `db:"kind" json:"kind"`
	Description string          `db:"description" json:"description"`
	LoggedAt    time.Time       `db:"logged_at" json:"loggedAt"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	CreatedBy   string          `db:"created_by" json:"createdBy"`
}

// SignedTotal returns the entry's effect on the CCA balance: positive for
// point entries, negative for penalties.
func (e LedgerEntry) SignedTotal() decimal.Decimal {
	if e.Kind == KindPenalty {
		return e.Total.Neg()
	}
	return e.Total
}

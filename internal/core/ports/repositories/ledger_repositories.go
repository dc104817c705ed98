package repositories

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

// SettlementSums are the raw aggregates behind a payroll settlement.
type SettlementSums struct {
	AccruedPoints    decimal.Decimal
	AccruedPenalties decimal.Decimal
	OrphanedEntries  int
}

// LedgerRepository persists the append-only transaction log and keeps the
// denormalized CCA balance consistent with it.
type LedgerRepository interface {
	// SaveEntry inserts the entry and applies delta to the CCA's points
	// balance as a single atomic increment, inside one database
	// transaction. Both writes succeed or neither does.
	SaveEntry(ctx context.Context, entry models.LedgerEntry, delta decimal.Decimal) error

	// DeleteEntry removes the entry and, when a row was actually deleted,
	// applies the exact inverse of its recorded effect to the CCA balance,
	// all inside one database transaction. Reversal reads total and kind
	// from the deleted row itself, never from the (possibly gone)
	// category. Returns false when no row existed, in which case the
	// balance is untouched.
	DeleteEntry(ctx context.Context, entryID, ccaID string) (bool, error)

	// ListEntriesByCCA returns the CCA's entries ordered by logged_at
	// descending, then created_at descending.
	ListEntriesByCCA(ctx context.Context, ccaID string) ([]models.LedgerEntry, error)

	// SumSettlement aggregates entry totals joined against the CURRENT
	// category catalog. Entries whose category has been deleted are
	// counted in OrphanedEntries and excluded from both sums.
	SumSettlement(ctx context.Context, ccaID string) (SettlementSums, error)

	// SumSignedTotals recomputes the balance from the ledger alone, using
	// each entry's own denormalized kind. This is the reconciliation
	// source of truth.
	SumSignedTotals(ctx context.Context, ccaID string) (decimal.Decimal, error)
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for ledger entries and the
// cached CCA balance.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// SaveEntry inserts the entry and applies delta to the CCA balance in one
// database transaction. The balance change is a single-statement atomic
// increment, so concurrent writers against the same CCA cannot lose
// updates.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry models.LedgerEntry, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO ledger_entries (
			entry_id, cca_id, category_id, name, amount, quantity, total,
			kind, description, logged_at, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CCAID,
		entry.CategoryID,
		entry.Name,
		entry.Amount,
		entry.Quantity,
		entry.Total,
		entry.Kind,
		entry.Description,
		entry.LoggedAt,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+entry.EntryID, err)
	}

	tag, err := tx.Exec(ctx, `UPDATE ccas SET points = points + $1 WHERE cca_id = $2;`, delta, entry.CCAID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply balance delta for CCA "+entry.CCAID, err)
	}
	if tag.RowsAffected() == 0 {
		// Entry insert would have FK-failed first in practice; this guards
		// the invariant regardless.
		return fmt.Errorf("%w: CCA %s", apperrors.ErrNotFound, entry.CCAID)
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes the entry and reverses its effect on the balance in
// one database transaction. Total and kind are read from the deleted row
// itself via RETURNING, so reversal never depends on caller-echoed values
// or on the (possibly deleted) category. When no row matches, the balance
// is left untouched and (false, nil) is returned.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID, ccaID string) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	var total decimal.Decimal
	var kind models.CategoryKind
	err = tx.QueryRow(ctx, `
		DELETE FROM ledger_entries
		WHERE entry_id = $1 AND cca_id = $2
		RETURNING total, kind;
	`, entryID, ccaID).Scan(&total, &kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already reversed; committing the empty transaction keeps the
			// operation idempotent without touching the balance.
			return false, r.Commit(ctx, tx)
		}
		return false, apperrors.NewAppError(500, "failed to delete ledger entry "+entryID, err)
	}

	// Exact inverse of the delta applied at creation. SignedTotal owns the
	// sign rule for both directions, so record and reverse cannot drift.
	delta := models.LedgerEntry{Total: total, Kind: kind}.SignedTotal().Neg()

	_, err = tx.Exec(ctx, `UPDATE ccas SET points = points + $1 WHERE cca_id = $2;`, delta, ccaID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to reverse balance delta for CCA "+ccaID, err)
	}

	return true, r.Commit(ctx, tx)
}

// ListEntriesByCCA returns a CCA's entries, newest logged first.
func (r *PgxLedgerRepository) ListEntriesByCCA(ctx context.Context, ccaID string) ([]models.LedgerEntry, error) {
	query := `
		SELECT entry_id, cca_id, category_id, name, amount, quantity, total,
		       kind, description, logged_at, created_at, created_by
		FROM ledger_entries
		WHERE cca_id = $1
		ORDER BY logged_at DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for CCA %s: %w", ccaID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		var e models.LedgerEntry
		err := row.Scan(
			&e.EntryID,
			&e.CCAID,
			&e.CategoryID,
			&e.Name,
			&e.Amount,
			&e.Quantity,
			&e.Total,
			&e.Kind,
			&e.Description,
			&e.LoggedAt,
			&e.CreatedAt,
			&e.CreatedBy,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	return entries, nil
}

// SumSettlement aggregates totals against the CURRENT catalog. The LEFT
// JOIN keeps orphaned entries visible so they can be counted; they
// contribute to neither sum.
func (r *PgxLedgerRepository) SumSettlement(ctx context.Context, ccaID string) (portsrepo.SettlementSums, error) {
	query := `
		SELECT
			COALESCE(SUM(e.total) FILTER (WHERE c.kind = 'point'), 0)   AS accrued_points,
			COALESCE(SUM(e.total) FILTER (WHERE c.kind = 'penalty'), 0) AS accrued_penalties,
			COUNT(*) FILTER (WHERE c.category_id IS NULL)               AS orphaned_entries
		FROM ledger_entries e
		LEFT JOIN point_categories c ON c.category_id = e.category_id
		WHERE e.cca_id = $1;
	`
	var sums portsrepo.SettlementSums
	err := r.Pool.QueryRow(ctx, query, ccaID).Scan(
		&sums.AccruedPoints,
		&sums.AccruedPenalties,
		&sums.OrphanedEntries,
	)
	if err != nil {
		return portsrepo.SettlementSums{}, fmt.Errorf("failed to sum settlement for CCA %s: %w", ccaID, err)
	}
	return sums, nil
}

// SumSignedTotals recomputes the balance from the entries' own denormalized
// kind, independent of the current catalog.
func (r *PgxLedgerRepository) SumSignedTotals(ctx context.Context, ccaID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN kind = 'penalty' THEN -total ELSE total END), 0)
		FROM ledger_entries
		WHERE cca_id = $1;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, ccaID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum signed totals for CCA %s: %w", ccaID, err)
	}
	return sum, nil
}

package services

import (
	"context"

	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// LedgerSvcFacade is the points/penalty ledger and payroll settlement
// engine. The denormalized CCA balance is only ever mutated through these
// operations.
type LedgerSvcFacade interface {
	// RecordEntry looks up the category (it must exist at creation time),
	// freezes name/amount/kind onto the entry, computes total and applies
	// the signed delta to the CCA balance atomically with the insert.
	RecordEntry(ctx context.Context, ccaID string, req dto.RecordEntryRequest, recordedBy string) (*models.LedgerEntry, error)

	// ReverseEntry hard-deletes the entry and applies the exact inverse
	// delta. Idempotent: reversing an already-gone entry succeeds without
	// touching the balance. Returns whether an entry was actually removed.
	ReverseEntry(ctx context.Context, ccaID, entryID string) (bool, error)

	ListEntries(ctx context.Context, ccaID string) ([]models.LedgerEntry, error)

	// ComputeSettlement derives the net payroll amount from the live
	// ledger joined against the current catalog. Read-only, never
	// persisted; it may legitimately diverge from the cached balance when
	// categories were edited or deleted after entries were recorded.
	ComputeSettlement(ctx context.Context, ccaID string) (*dto.SettlementResponse, error)

	// Reconcile recomputes the balance from the ledger, reports any
	// divergence from the cached value, and repairs the cache on request.
	Reconcile(ctx context.Context, ccaID string, repair bool, actorID string) (*dto.ReconciliationResponse, error)

	// ReconcileVenue runs Reconcile over a venue's whole roster.
	ReconcileVenue(ctx context.Context, venueID string, repair bool, actorID string) ([]dto.ReconciliationResponse, error)
}

// CategorySvcFacade manages the per-venue category catalog.
type CategorySvcFacade interface {
	// UpsertCategory creates (generating an id) or replaces a category.
	// Rejects non-positive amounts and unknown kinds with ErrValidation.
	// Returns the effective category id.
	UpsertCategory(ctx context.Context, venueID string, req dto.UpsertCategoryRequest, actorID string) (string, error)

	ListCategories(ctx context.Context, venueID string) ([]models.PointCategory, error)

	// DeleteCategory is idempotent and never cascades to ledger entries.
	DeleteCategory(ctx context.Context, categoryID string) error
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

// ledgerService owns the append-only transaction log and the derived
// payroll settlement. The cached CCA balance is treated as a cache over the
// ledger: the repository applies every balance change as an atomic
// increment in the same database transaction as the entry write, and
// Reconcile recomputes the cache from the log on demand.
type ledgerService struct {
	ledgerRepo   portsrepo.LedgerRepository
	categoryRepo portsrepo.CategoryRepository
	ccaRepo      portsrepo.CCARepository
}

// NewLedgerService creates the ledger/settlement engine.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepository,
	categoryRepo portsrepo.CategoryRepository,
	ccaRepo portsrepo.CCARepository,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		categoryRepo: categoryRepo,
		ccaRepo:      ccaRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordEntry(ctx context.Context, ccaID string, req dto.RecordEntryRequest, recordedBy string) (*models.LedgerEntry, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	if _, err := s.ccaRepo.FindCCAByID(ctx, ccaID); err != nil {
		return nil, fmt.Errorf("failed to find CCA %s: %w", ccaID, err)
	}

	// The one place a fresh category lookup is required: the category must
	// exist at creation time. Its name, rate and kind are frozen onto the
	// entry so later catalog edits never rewrite history.
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", req.CategoryID, err)
	}

	now := time.Now().UTC()
	loggedAt := now
	if req.LogDate != nil {
		loggedAt = req.LogDate.UTC()
	}

	total := category.Amount.Mul(decimal.NewFromInt(int64(quantity)))

	categoryID := category.CategoryID
	entry := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		CCAID:       ccaID,
		CategoryID:  &categoryID,
		Name:        category.Name,
		Amount:      category.Amount,
		Quantity:    quantity,
		Total:       total,
		Kind:        category.Kind,
		Description: req.Description,
		LoggedAt:    loggedAt,
		CreatedAt:   now,
		CreatedBy:   recordedBy,
	}

	// Insert + balance increment happen in one repository transaction.
	if err := s.ledgerRepo.SaveEntry(ctx, entry, entry.SignedTotal()); err != nil {
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	return &entry, nil
}

func (s *ledgerService) ReverseEntry(ctx context.Context, ccaID, entryID string) (bool, error) {
	deleted, err := s.ledgerRepo.DeleteEntry(ctx, entryID, ccaID)
	if err != nil {
		return false, fmt.Errorf("failed to reverse ledger entry %s: %w", entryID, err)
	}
	// When the entry was already gone the repository leaves the balance
	// untouched, so a repeated reversal cannot double-apply the delta.
	return deleted, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, ccaID string) ([]models.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntriesByCCA(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for CCA %s: %w", ccaID, err)
	}
	return entries, nil
}

func (s *ledgerService) ComputeSettlement(ctx context.Context, ccaID string) (*dto.SettlementResponse, error) {
	if _, err := s.ccaRepo.FindCCAByID(ctx, ccaID); err != nil {
		return nil, fmt.Errorf("failed to find CCA %s: %w", ccaID, err)
	}

	sums, err := s.ledgerRepo.SumSettlement(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute settlement for CCA %s: %w", ccaID, err)
	}

	return &dto.SettlementResponse{
		CCAID:              ccaID,
		AccruedPoints:      sums.AccruedPoints,
		AccruedPenalties:   sums.AccruedPenalties,
		FinalSettlement:    sums.AccruedPoints.Sub(sums.AccruedPenalties),
		OrphanedEntryCount: sums.OrphanedEntries,
	}, nil
}

func (s *ledgerService) Reconcile(ctx context.Context, ccaID string, repair bool, actorID string) (*dto.ReconciliationResponse, error) {
	cca, err := s.ccaRepo.FindCCAByID(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to find CCA %s: %w", ccaID, err)
	}

	ledgerBalance, err := s.ledgerRepo.SumSignedTotals(ctx, ccaID)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute balance for CCA %s: %w", ccaID, err)
	}

	divergence := cca.Points.Sub(ledgerBalance)
	result := &dto.ReconciliationResponse{
		CCAID:         ccaID,
		LedgerBalance: ledgerBalance,
		CachedBalance: cca.Points,
		Divergence:    divergence,
		Diverged:      !divergence.IsZero(),
	}

	if repair && result.Diverged {
		if err := s.ccaRepo.OverwritePoints(ctx, ccaID, ledgerBalance, actorID); err != nil {
			return nil, fmt.Errorf("%w: failed to repair balance for CCA %s: %v", apperrors.ErrConsistency, ccaID, err)
		}
		result.Repaired = true
	}

	return result, nil
}

func (s *ledgerService) ReconcileVenue(ctx context.Context, venueID string, repair bool, actorID string) ([]dto.ReconciliationResponse, error) {
	ccaIDs, err := s.ccaRepo.ListCCAIDsByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list CCAs for venue %s: %w", venueID, err)
	}

	results := make([]dto.ReconciliationResponse, 0, len(ccaIDs))
	for _, ccaID := range ccaIDs {
		res, err := s.Reconcile(ctx, ccaID, repair, actorID)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

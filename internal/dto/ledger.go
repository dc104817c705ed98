package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
)

// RecordEntryRequest records one application of a category to a CCA.
// Quantity defaults to 1; LogDate defaults to now.
type RecordEntryRequest struct {
	CategoryID  string     `json:"categoryID" binding:"required"`
	Quantity    int        `json:"quantity" binding:"omitempty,gte=1"`
	Description string     `json:"description"`
	LogDate     *time.Time `json:"logDate"`
}

// RecordEntryResponse is returned after recording an entry.
type RecordEntryResponse struct {
	Success bool   `json:"success"`
	EntryID string `json:"id"`
}

// EntryMutationResponse is returned by entry reversal.
type EntryMutationResponse struct {
	Success bool `json:"success"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID     string          `json:"id"`
	CCAID       string          `json:"ccaID"`
	CategoryID  *string         `json:"categoryID,omitempty"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Kind        string          `json:"type"`
	Description string          `json:"description"`
	LoggedAt    time.Time       `json:"logDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToEntryResponse converts a models.LedgerEntry to its response DTO.
func ToEntryResponse(e *models.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		CCAID:       e.CCAID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Amount:      e.Amount,
		Quantity:    e.Quantity,
		Total:       e.Total,
		Kind:        string(e.Kind),
		Description: e.Description,
		LoggedAt:    e.LoggedAt,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListEntryResponse converts a slice of ledger entries to response DTOs.
func ToListEntryResponse(entries []models.LedgerEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}

// SettlementResponse is the on-demand payroll settlement for one CCA.
// It is computed from the live ledger joined against the current category
// catalog and is never persisted.
type SettlementResponse struct {
	CCAID              string          `json:"ccaID"`
	AccruedPoints      decimal.Decimal `json:"accruedPoints"`
	AccruedPenalties   decimal.Decimal `json:"accruedPenalties"`
	FinalSettlement    decimal.Decimal `json:"finalSettlement"`
	OrphanedEntryCount int             `json:"orphanedEntryCount"`
}

// ReconcileRequest controls whether a detected divergence is repaired.
type ReconcileRequest struct {
	Repair bool `json:"repair"`
}

// ReconciliationResponse reports the ledger-recomputed balance against the
// cached balance on the CCA record.
type ReconciliationResponse struct {
	CCAID         string          `json:"ccaID"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	CachedBalance decimal.Decimal `json:"cachedBalance"`
	Divergence    decimal.Decimal `json:"divergence"`
	Diverged      bool            `json:"diverged"`
	Repaired      bool            `json:"repaired"`
}

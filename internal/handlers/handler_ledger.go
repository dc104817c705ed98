package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the points/penalty ledger and
// payroll settlement.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger, settlement and reconciliation
// routes under a CCA. All mutations are admin-only.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ccas := rg.Group("/ccas/:cca_id")
	{
		ccas.GET("/ledger", h.listEntries)
		ccas.POST("/ledger", middleware.RequireAdmin(), h.recordEntry)
		ccas.DELETE("/ledger/:entry_id", middleware.RequireAdmin(), h.reverseEntry)
		ccas.GET("/settlement", middleware.RequireAdmin(), h.getSettlement)
		ccas.POST("/reconcile", middleware.RequireAdmin(), h.reconcile)
	}
}

// recordEntry godoc
// @Summary Record a ledger entry
// @Description Applies a category to a CCA. The category's name, amount and type are frozen onto the entry and the CCA balance is adjusted atomically.
// @Tags ledger
// @Accept json
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param entry body dto.RecordEntryRequest true "Entry details"
// @Success 201 {object} dto.RecordEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "CCA or category not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/ledger [post]
func (h *ledgerHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.RecordEntry(c.Request.Context(), ccaID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA or category not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to record ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record entry"})
		}
		return
	}

	logger.Info("Ledger entry recorded", slog.String("entry_id", entry.EntryID), slog.String("cca_id", ccaID))
	c.JSON(http.StatusCreated, dto.RecordEntryResponse{Success: true, EntryID: entry.EntryID})
}

// reverseEntry godoc
// @Summary Reverse a ledger entry
// @Description Hard-deletes the entry and applies the exact inverse balance delta. Idempotent: reversing a missing entry succeeds without touching the balance.
// @Tags ledger
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryMutationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/ledger/{entry_id} [delete]
func (h *ledgerHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")
	entryID := c.Param("entry_id")

	removed, err := h.ledgerService.ReverseEntry(c.Request.Context(), ccaID, entryID)
	if err != nil {
		logger.Error("Failed to reverse ledger entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reverse entry"})
		return
	}

	if !removed {
		logger.Info("Reversal skipped, entry already gone", slog.String("entry_id", entryID))
	}
	c.JSON(http.StatusOK, dto.EntryMutationResponse{Success: true})
}

// listEntries godoc
// @Summary List a CCA's ledger entries
// @Tags ledger
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), ccaID)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// getSettlement godoc
// @Summary Compute a CCA's payroll settlement
// @Description Derives accrued points, accrued penalties and the net amount from the live ledger joined against the current catalog. Entries whose category was deleted are excluded and counted.
// @Tags ledger
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/settlement [get]
func (h *ledgerHandler) getSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	settlement, err := h.ledgerService.ComputeSettlement(c.Request.Context(), ccaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else {
			logger.Error("Failed to compute settlement", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute settlement"})
		}
		return
	}

	c.JSON(http.StatusOK, settlement)
}

// reconcile godoc
// @Summary Reconcile a CCA's cached balance
// @Description Recomputes the balance from the ledger and reports any divergence from the cached value. With repair set, the cached balance is overwritten.
// @Tags ledger
// @Accept json
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param options body dto.ReconcileRequest false "Reconciliation options"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/reconcile [post]
func (h *ledgerHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body is optional; default is report-only
		req.Repair = false
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.ledgerService.Reconcile(c.Request.Context(), ccaID, req.Repair, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else {
			logger.Error("Failed to reconcile balance", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reconcile balance"})
		}
		return
	}

	if result.Diverged {
		logger.Warn("Cached balance diverged from ledger",
			slog.String("cca_id", ccaID),
			slog.String("divergence", result.Divergence.String()),
			slog.Bool("repaired", result.Repaired),
		)
	}
	c.JSON(http.StatusOK, result)
}

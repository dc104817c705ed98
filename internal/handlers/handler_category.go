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

// categoryHandler handles HTTP requests for the per-venue category catalog.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers catalog routes under a venue.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/venues/:venue_id/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", middleware.RequireAdmin(), h.upsertCategory)
		categories.DELETE("/:category_id", middleware.RequireAdmin(), h.deleteCategory)
	}
}

// upsertCategory godoc
// @Summary Create or replace a category
// @Description Creates a category when id is empty, otherwise replaces name/amount/type. Never touches existing ledger entries.
// @Tags categories
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param category body dto.UpsertCategoryRequest true "Category details"
// @Success 200 {object} dto.CategoryMutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/categories [post]
func (h *categoryHandler) upsertCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	var req dto.UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	categoryID, err := h.categoryService.UpsertCategory(c.Request.Context(), venueID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else {
			logger.Error("Failed to upsert category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CategoryMutationResponse{Success: true, CategoryID: categoryID})
}

// listCategories godoc
// @Summary List a venue's categories
// @Tags categories
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	categories, err := h.categoryService.ListCategories(c.Request.Context(), venueID)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Idempotent. Existing ledger entries keep their frozen name/amount and become orphaned.
// @Tags categories
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param category_id path string true "Category ID"
// @Success 200 {object} dto.CategoryMutationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/categories/{category_id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("category_id")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryMutationResponse{Success: true})
}

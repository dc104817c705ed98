package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/middleware"
)

// ccaHandler handles HTTP requests for the staff roster.
type ccaHandler struct {
	ccaService portssvc.CCASvcFacade
}

func newCCAHandler(cs portssvc.CCASvcFacade) *ccaHandler {
	return &ccaHandler{ccaService: cs}
}

// registerCCARoutes registers admin roster management routes.
func registerCCARoutes(rg *gin.RouterGroup, ccaService portssvc.CCASvcFacade) {
	h := newCCAHandler(ccaService)

	ccas := rg.Group("/ccas", middleware.RequireAdmin())
	{
		ccas.POST("", h.createCCA)
		ccas.GET("/:cca_id", h.getCCA)
		ccas.PUT("/:cca_id", h.updateCCA)
		ccas.DELETE("/:cca_id", h.deleteCCA)
	}

	rg.GET("/venues/:venue_id/ccas", middleware.RequireAdmin(), h.listCCAsByVenue)
}

// registerPublicCCARoutes registers the unauthenticated roster view. The
// public DTO omits real names, phone numbers and balances.
func registerPublicCCARoutes(rg *gin.RouterGroup, ccaService portssvc.CCASvcFacade) {
	h := newCCAHandler(ccaService)
	rg.GET("/venues/:venue_id/ccas", h.listPublicCCAsByVenue)
}

// createCCA godoc
// @Summary Add a CCA to the roster
// @Tags ccas
// @Accept json
// @Produce json
// @Param cca body dto.CreateCCARequest true "CCA details"
// @Success 201 {object} dto.CCAResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas [post]
func (h *ccaHandler) createCCA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCCARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cca, err := h.ccaService.CreateCCA(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create CCA", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create CCA"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCCAResponse(cca))
}

// getCCA godoc
// @Summary Get a CCA by ID
// @Tags ccas
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Success 200 {object} dto.CCAResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id} [get]
func (h *ccaHandler) getCCA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	cca, err := h.ccaService.GetCCAByID(c.Request.Context(), ccaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else {
			logger.Error("Failed to get CCA", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get CCA"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCCAResponse(cca))
}

// listCCAsByVenue godoc
// @Summary List a venue's roster (admin view)
// @Tags ccas
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param active_only query bool false "Only active CCAs"
// @Success 200 {array} dto.CCAResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/ccas [get]
func (h *ccaHandler) listCCAsByVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	ccas, err := h.ccaService.ListCCAsByVenue(c.Request.Context(), venueID, activeOnly)
	if err != nil {
		logger.Error("Failed to list CCAs", slog.String("venue_id", venueID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list CCAs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCCAResponse(ccas))
}

// listPublicCCAsByVenue godoc
// @Summary List a venue's roster (public view)
// @Description Visitor-facing roster: stage name, age, zodiac signs, photo and intro only.
// @Tags public
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {array} dto.PublicCCAResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/venues/{venue_id}/ccas [get]
func (h *ccaHandler) listPublicCCAsByVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	ccas, err := h.ccaService.ListCCAsByVenue(c.Request.Context(), venueID, true)
	if err != nil {
		logger.Error("Failed to list public roster", slog.String("venue_id", venueID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list CCAs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPublicCCAResponse(ccas))
}

// updateCCA godoc
// @Summary Update a CCA's profile
// @Description Updates profile fields only; the points balance cannot be set here.
// @Tags ccas
// @Accept json
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param cca body dto.UpdateCCARequest true "Fields to update"
// @Success 200 {object} dto.CCAResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id} [put]
func (h *ccaHandler) updateCCA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	var req dto.UpdateCCARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cca, err := h.ccaService.UpdateCCA(c.Request.Context(), ccaID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else {
			logger.Error("Failed to update CCA", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update CCA"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCCAResponse(cca))
}

// deleteCCA godoc
// @Summary Remove a CCA from the roster
// @Tags ccas
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id} [delete]
func (h *ccaHandler) deleteCCA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	if err := h.ccaService.DeleteCCA(c.Request.Context(), ccaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "CCA has related records; deactivate it instead"})
		} else {
			logger.Error("Failed to delete CCA", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete CCA"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

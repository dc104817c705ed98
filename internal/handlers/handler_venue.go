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

// venueHandler handles HTTP requests related to venues.
type venueHandler struct {
	venueService portssvc.VenueSvcFacade
}

func newVenueHandler(vs portssvc.VenueSvcFacade) *venueHandler {
	return &venueHandler{venueService: vs}
}

// registerVenueRoutes registers admin venue management routes.
func registerVenueRoutes(rg *gin.RouterGroup, venueService portssvc.VenueSvcFacade) {
	h := newVenueHandler(venueService)

	venues := rg.Group("/venues")
	{
		venues.GET("", h.listVenues)
		venues.GET("/:venue_id", h.getVenue)
		venues.POST("", middleware.RequireAdmin(), h.createVenue)
		venues.PUT("/:venue_id", middleware.RequireAdmin(), h.updateVenue)
		venues.DELETE("/:venue_id", middleware.RequireAdmin(), h.deleteVenue)
	}
}

// createVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body dto.CreateVenueRequest true "Venue details"
// @Success 201 {object} dto.VenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues [post]
func (h *venueHandler) createVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create venue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create venue"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

// listVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {array} dto.VenueResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues [get]
func (h *venueHandler) listVenues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venues, err := h.venueService.ListVenues(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list venues", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list venues"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVenueResponse(venues))
}

// getVenue godoc
// @Summary Get a venue by ID
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {object} dto.VenueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id} [get]
func (h *venueHandler) getVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	venue, err := h.venueService.GetVenueByID(c.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else {
			logger.Error("Failed to get venue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get venue"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

// updateVenue godoc
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param venue body dto.UpdateVenueRequest true "Fields to update"
// @Success 200 {object} dto.VenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id} [put]
func (h *venueHandler) updateVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	venue, err := h.venueService.UpdateVenue(c.Request.Context(), venueID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else {
			logger.Error("Failed to update venue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update venue"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

// deleteVenue godoc
// @Summary Delete a venue
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id} [delete]
func (h *venueHandler) deleteVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	if err := h.venueService.DeleteVenue(c.Request.Context(), venueID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else {
			logger.Error("Failed to delete venue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete venue"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

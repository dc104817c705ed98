package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/middleware"
)

// reservationHandler handles HTTP requests for customer bookings.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// registerReservationRoutes registers booking management routes.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("/:reservation_id", h.getReservation)
		reservations.PUT("/:reservation_id", h.updateReservation)
		reservations.DELETE("/:reservation_id", middleware.RequireAdmin(), h.deleteReservation)
	}

	rg.GET("/venues/:venue_id/reservations", h.listReservationsByVenue)
}

// registerPublicReservationRoutes exposes booking creation to visitors.
func registerPublicReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)
	rg.POST("/reservations", h.createReservation)
}

// parseDateRange reads optional from/to query params (RFC 3339), defaulting
// to the last 30 days.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t
	}
	return from, to, nil
}

// createReservation godoc
// @Summary Book a visit
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Booking details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Venue or CCA not found"
// @Failure 500 {object} ErrorResponse
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	// Public bookings carry no authenticated actor
	actorID, _ := middleware.GetUserIDFromContext(c)

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue or CCA not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create reservation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// getReservation godoc
// @Summary Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservation_id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reservationID := c.Param("reservation_id")

	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation not found"})
		} else {
			logger.Error("Failed to get reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get reservation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// listReservationsByVenue godoc
// @Summary List a venue's reservations
// @Tags reservations
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {array} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/reservations [get]
func (h *reservationHandler) listReservationsByVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return
	}

	reservations, err := h.reservationService.ListReservationsByVenue(c.Request.Context(), venueID, from, to)
	if err != nil {
		logger.Error("Failed to list reservations", slog.String("venue_id", venueID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reservations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReservationResponse(reservations))
}

// updateReservation godoc
// @Summary Update a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Param reservation body dto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservation_id} [put]
func (h *reservationHandler) updateReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reservationID := c.Param("reservation_id")

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), reservationID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update reservation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// deleteReservation godoc
// @Summary Delete a reservation
// @Tags reservations
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservation_id} [delete]
func (h *reservationHandler) deleteReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reservationID := c.Param("reservation_id")

	if err := h.reservationService.DeleteReservation(c.Request.Context(), reservationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation not found"})
		} else {
			logger.Error("Failed to delete reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete reservation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

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

// attendanceHandler handles HTTP requests for shift check-in/check-out.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers shift tracking routes.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	ccas := rg.Group("/ccas/:cca_id/attendance")
	{
		ccas.POST("/check-in", h.checkIn)
		ccas.POST("/check-out", h.checkOut)
		ccas.GET("", h.listByCCA)
	}

	rg.GET("/venues/:venue_id/attendance", middleware.RequireAdmin(), h.listByVenue)
}

// checkIn godoc
// @Summary Open a shift
// @Description Opens a working shift for the CCA. A second check-in on the same work date without a check-out is rejected.
// @Tags attendance
// @Accept json
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param shift body dto.CheckInRequest true "Shift details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "CCA not found"
// @Failure 409 {object} ErrorResponse "Shift already open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/attendance/check-in [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), ccaID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Shift already open for this work date"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CCA not found"})
		} else {
			logger.Error("Failed to check in", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check in"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// checkOut godoc
// @Summary Close the open shift
// @Tags attendance
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param work_date query string false "Work date (RFC 3339), defaults to today"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No open shift"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/attendance/check-out [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	workDate := time.Now()
	if s := c.Query("work_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work_date: " + err.Error()})
			return
		}
		workDate = t
	}

	record, err := h.attendanceService.CheckOut(c.Request.Context(), ccaID, workDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No open shift for this work date"})
		} else {
			logger.Error("Failed to check out", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check out"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// listByCCA godoc
// @Summary List a CCA's attendance records
// @Tags attendance
// @Produce json
// @Param cca_id path string true "CCA ID"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ccas/{cca_id}/attendance [get]
func (h *attendanceHandler) listByCCA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ccaID := c.Param("cca_id")

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return
	}

	records, err := h.attendanceService.ListAttendanceByCCA(c.Request.Context(), ccaID, from, to)
	if err != nil {
		logger.Error("Failed to list attendance", slog.String("cca_id", ccaID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// listByVenue godoc
// @Summary List a venue's attendance records
// @Tags attendance
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /venues/{venue_id}/attendance [get]
func (h *attendanceHandler) listByVenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return
	}

	records, err := h.attendanceService.ListAttendanceByVenue(c.Request.Context(), venueID, from, to)
	if err != nil {
		logger.Error("Failed to list attendance", slog.String("venue_id", venueID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

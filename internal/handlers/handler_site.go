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

// siteHandler handles HTTP requests for gallery, banners and site settings.
type siteHandler struct {
	siteService portssvc.SiteSvcFacade
}

func newSiteHandler(ss portssvc.SiteSvcFacade) *siteHandler {
	return &siteHandler{siteService: ss}
}

// registerSiteRoutes registers admin site management routes.
func registerSiteRoutes(rg *gin.RouterGroup, siteService portssvc.SiteSvcFacade) {
	h := newSiteHandler(siteService)

	admin := rg.Group("", middleware.RequireAdmin())
	{
		admin.POST("/gallery", h.upsertGalleryItem)
		admin.DELETE("/gallery/:item_id", h.deleteGalleryItem)
		admin.POST("/banners", h.upsertBanner)
		admin.DELETE("/banners/:banner_id", h.deleteBanner)
		admin.PUT("/settings", h.updateSettings)
	}
	rg.GET("/banners", h.listBanners)
}

// registerPublicSiteRoutes exposes the landing page data to visitors.
func registerPublicSiteRoutes(rg *gin.RouterGroup, siteService portssvc.SiteSvcFacade) {
	h := newSiteHandler(siteService)
	rg.GET("/venues/:venue_id/gallery", h.listGalleryItems)
	rg.GET("/banners", h.listActiveBanners)
	rg.GET("/settings", h.getSettings)
}

// upsertGalleryItem godoc
// @Summary Create or replace a gallery item
// @Tags site
// @Accept json
// @Produce json
// @Param item body dto.UpsertGalleryItemRequest true "Gallery item"
// @Success 200 {object} dto.GalleryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery [post]
func (h *siteHandler) upsertGalleryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.siteService.UpsertGalleryItem(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
		} else {
			logger.Error("Failed to upsert gallery item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save gallery item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryItemResponse(item))
}

// listGalleryItems godoc
// @Summary List a venue's gallery
// @Tags public
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {array} dto.GalleryItemResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/venues/{venue_id}/gallery [get]
func (h *siteHandler) listGalleryItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	venueID := c.Param("venue_id")

	items, err := h.siteService.ListGalleryItems(c.Request.Context(), venueID)
	if err != nil {
		logger.Error("Failed to list gallery items", slog.String("venue_id", venueID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list gallery items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGalleryItemResponse(items))
}

// deleteGalleryItem godoc
// @Summary Delete a gallery item
// @Tags site
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery/{item_id} [delete]
func (h *siteHandler) deleteGalleryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("item_id")

	if err := h.siteService.DeleteGalleryItem(c.Request.Context(), itemID); err != nil {
		logger.Error("Failed to delete gallery item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete gallery item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// upsertBanner godoc
// @Summary Create or replace a hero banner
// @Tags site
// @Accept json
// @Produce json
// @Param banner body dto.UpsertBannerRequest true "Banner details"
// @Success 200 {object} dto.BannerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banners [post]
func (h *siteHandler) upsertBanner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	banner, err := h.siteService.UpsertBanner(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to upsert banner", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save banner"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBannerResponse(banner))
}

// listBanners godoc
// @Summary List all banners
// @Tags site
// @Produce json
// @Param active_only query bool false "Only active banners"
// @Success 200 {array} dto.BannerResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banners [get]
func (h *siteHandler) listBanners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	banners, err := h.siteService.ListBanners(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list banners", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list banners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBannerResponse(banners))
}

// listActiveBanners godoc
// @Summary List active banners
// @Tags public
// @Produce json
// @Success 200 {array} dto.BannerResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/banners [get]
func (h *siteHandler) listActiveBanners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banners, err := h.siteService.ListBanners(c.Request.Context(), true)
	if err != nil {
		logger.Error("Failed to list banners", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list banners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBannerResponse(banners))
}

// deleteBanner godoc
// @Summary Delete a banner
// @Tags site
// @Produce json
// @Param banner_id path string true "Banner ID"
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banners/{banner_id} [delete]
func (h *siteHandler) deleteBanner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bannerID := c.Param("banner_id")

	if err := h.siteService.DeleteBanner(c.Request.Context(), bannerID); err != nil {
		logger.Error("Failed to delete banner", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete banner"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getSettings godoc
// @Summary Get site settings
// @Tags public
// @Produce json
// @Success 200 {object} dto.SiteSettingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/settings [get]
func (h *siteHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.siteService.GetSiteSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get site settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSiteSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Replace site settings
// @Tags site
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSiteSettingsRequest true "Site settings"
// @Success 200 {object} dto.SiteSettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *siteHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.siteService.UpdateSiteSettings(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to update site settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSiteSettingsResponse(settings))
}

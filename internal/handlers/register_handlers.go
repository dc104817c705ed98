package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nitelabs/venue_crm_app/cmd/docs"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/middleware"
	"github.com/nitelabs/venue_crm_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Unauthenticated visitor routes (landing page, roster, bookings)
	setupPublicRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures the /public group: read-only landing page
// data plus visitor booking creation. No auth, so the DTOs returned here
// never include personal data or balances.
func setupPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/public")

	registerPublicCCARoutes(public, services.CCA)
	registerPublicReservationRoutes(public, services.Reservation)
	registerPublicForumRoutes(public, services.Forum)
	registerPublicSiteRoutes(public, services.Site)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerVenueRoutes(v1, services.Venue)
	registerCategoryRoutes(v1, services.Category)
	registerCCARoutes(v1, services.CCA)
	registerLedgerRoutes(v1, services.Ledger)
	registerReservationRoutes(v1, services.Reservation)
	registerAttendanceRoutes(v1, services.Attendance)
	registerForumRoutes(v1, services.Forum)
	registerSiteRoutes(v1, services.Site)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

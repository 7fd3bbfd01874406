package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, wizardHandler *handlers.WizardHandler, catalogHandler *handlers.CatalogHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, wizardHandler)
	RegisterCatalogRoutes(r, catalogHandler)
	RegisterHealthRoute(r)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/packages/:packageID", h.GetPackage)
		api.GET("/packages/:packageID/departures", h.GetDepartureDates)
		api.GET("/packages/:packageID/addons", h.GetPackageAddons)
		api.GET("/packages/:packageID/itinerary", h.GetItineraryActivities)
	}
}

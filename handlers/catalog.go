package handlers

import (
	"net/http"

	"voyago/services/catalog"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only catalog queries the wizard UI consumes.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

func NewCatalogHandler(catalogSvc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: catalogSvc, Logger: logger}
}

// GetPackage handles GET /api/catalog/packages/:packageID.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	packageID := c.Param("packageID")
	pkg, err := h.CatalogSvc.Package(packageID)
	if err != nil {
		h.Logger.Error("failed to fetch package",
			zap.String("packageID", packageID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "package not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

// GetDepartureDates handles GET /api/catalog/packages/:packageID/departures.
func (h *CatalogHandler) GetDepartureDates(c *gin.Context) {
	packageID := c.Param("packageID")
	dates, err := h.CatalogSvc.DepartureDates(packageID)
	if err != nil {
		h.Logger.Error("failed to fetch departure dates",
			zap.String("packageID", packageID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch departure dates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"departures": dates})
}

// GetPackageAddons handles GET /api/catalog/packages/:packageID/addons.
func (h *CatalogHandler) GetPackageAddons(c *gin.Context) {
	packageID := c.Param("packageID")
	addons, err := h.CatalogSvc.PackageAddons(packageID)
	if err != nil {
		h.Logger.Error("failed to fetch package add-ons",
			zap.String("packageID", packageID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package add-ons", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"addons": addons})
}

// GetItineraryActivities handles GET /api/catalog/packages/:packageID/itinerary.
func (h *CatalogHandler) GetItineraryActivities(c *gin.Context) {
	packageID := c.Param("packageID")
	activities, err := h.CatalogSvc.ItineraryActivities(packageID)
	if err != nil {
		h.Logger.Error("failed to fetch itinerary activities",
			zap.String("packageID", packageID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch itinerary activities", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

package catalogRepo

import "voyago/models"

// CatalogRepository exposes the read-only catalog queries the wizard's UI
// layer consumes. Results are plain records fed into the core engine.
type CatalogRepository interface {
	GetPackage(id string) (*models.TravelPackage, error)
	GetDepartureDates(packageID string) ([]models.DepartureDate, error)
	GetDepartureDate(id string) (*models.DepartureDate, error)
	GetPackageAddons(packageID string) ([]models.PackageAddon, error)
	GetPackageAddon(id string) (*models.PackageAddon, error)
	GetItineraryActivities(packageID string) ([]models.ItineraryActivity, error)
	GetItineraryActivity(id string) (*models.ItineraryActivity, error)
}

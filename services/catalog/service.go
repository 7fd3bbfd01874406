package catalog

import (
	"fmt"

	catalogRepo "voyago/database/repository/catalog"
	"voyago/models"
)

// CatalogService exposes the three read-only catalog queries the wizard UI
// consumes. The core engine never fetches; it only receives these results
// as plain records.
type CatalogService interface {
	Package(id string) (*models.TravelPackage, error)
	DepartureDates(packageID string) ([]models.DepartureDate, error)
	PackageAddons(packageID string) ([]models.PackageAddon, error)
	ItineraryActivities(packageID string) ([]models.ItineraryActivity, error)
	DepartureDate(id string) (*models.DepartureDate, error)
	ResolveAddon(key models.AddonKey) (*models.SelectedAddon, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) Package(id string) (*models.TravelPackage, error) {
	return s.Repo.GetPackage(id)
}

func (s *DefaultCatalogService) DepartureDates(packageID string) ([]models.DepartureDate, error) {
	return s.Repo.GetDepartureDates(packageID)
}

func (s *DefaultCatalogService) PackageAddons(packageID string) ([]models.PackageAddon, error) {
	return s.Repo.GetPackageAddons(packageID)
}

func (s *DefaultCatalogService) ItineraryActivities(packageID string) ([]models.ItineraryActivity, error) {
	return s.Repo.GetItineraryActivities(packageID)
}

func (s *DefaultCatalogService) DepartureDate(id string) (*models.DepartureDate, error) {
	return s.Repo.GetDepartureDate(id)
}

// ResolveAddon turns a ledger key into a priced ledger entry from the
// catalog. Quantity and line total are filled in by the engine's pricing
// pass, not here.
func (s *DefaultCatalogService) ResolveAddon(key models.AddonKey) (*models.SelectedAddon, error) {
	switch key.Kind {
	case models.AddonKindPackage:
		addon, err := s.Repo.GetPackageAddon(key.ID)
		if err != nil {
			return nil, err
		}
		return &models.SelectedAddon{
			Kind:      models.AddonKindPackage,
			RefID:     addon.ID,
			Name:      addon.Name,
			PriceType: addon.PriceType,
			UnitPrice: addon.Price,
		}, nil
	case models.AddonKindItinerary:
		activity, err := s.Repo.GetItineraryActivity(key.ID)
		if err != nil {
			return nil, err
		}
		return &models.SelectedAddon{
			Kind:      models.AddonKindItinerary,
			RefID:     activity.ID,
			Name:      activity.ActivityName,
			PriceType: models.PricePerPerson,
			UnitPrice: activity.OptionalPrice,
		}, nil
	default:
		return nil, fmt.Errorf("unknown add-on kind %q", key.Kind)
	}
}

package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	packages   *mongo.Collection
	departures *mongo.Collection
	addons     *mongo.Collection
	itinerary  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoCatalogRepo{
		packages:   db.Collection("packages"),
		departures: db.Collection("departure_dates"),
		addons:     db.Collection("package_addons"),
		itinerary:  db.Collection("itinerary_activities"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.packages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create package index: %w", err)
	}
	for _, coll := range []*mongo.Collection{r.departures, r.addons, r.itinerary} {
		if _, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "package_id", Value: 1}}},
		}); err != nil {
			return fmt.Errorf("failed to create catalog indexes: %w", err)
		}
	}
	return nil
}

func (r *MongoCatalogRepo) GetPackage(id string) (*models.TravelPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.TravelPackage
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoCatalogRepo) GetDepartureDates(packageID string) ([]models.DepartureDate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.departures.Find(ctx, bson.M{"package_id": packageID},
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departure dates: %w", err)
	}
	var dates []models.DepartureDate
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, fmt.Errorf("failed to decode departure dates: %w", err)
	}
	return dates, nil
}

func (r *MongoCatalogRepo) GetDepartureDate(id string) (*models.DepartureDate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var date models.DepartureDate
	if err := r.departures.FindOne(ctx, bson.M{"id": id}).Decode(&date); err != nil {
		return nil, fmt.Errorf("failed to fetch departure date %s: %w", id, err)
	}
	return &date, nil
}

func (r *MongoCatalogRepo) GetPackageAddons(packageID string) ([]models.PackageAddon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.addons.Find(ctx, bson.M{"package_id": packageID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package add-ons: %w", err)
	}
	var addons []models.PackageAddon
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, fmt.Errorf("failed to decode package add-ons: %w", err)
	}
	return addons, nil
}

func (r *MongoCatalogRepo) GetPackageAddon(id string) (*models.PackageAddon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addon models.PackageAddon
	if err := r.addons.FindOne(ctx, bson.M{"id": id}).Decode(&addon); err != nil {
		return nil, fmt.Errorf("failed to fetch add-on %s: %w", id, err)
	}
	return &addon, nil
}

func (r *MongoCatalogRepo) GetItineraryActivities(packageID string) ([]models.ItineraryActivity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.itinerary.Find(ctx, bson.M{"package_id": packageID},
		options.Find().SetSort(bson.D{{Key: "day_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary activities: %w", err)
	}
	var activities []models.ItineraryActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary activities: %w", err)
	}
	return activities, nil
}

func (r *MongoCatalogRepo) GetItineraryActivity(id string) (*models.ItineraryActivity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var activity models.ItineraryActivity
	if err := r.itinerary.FindOne(ctx, bson.M{"id": id}).Decode(&activity); err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary activity %s: %w", id, err)
	}
	return &activity, nil
}

package models

// TravelPackage is the minimal catalog record the wizard needs for display.
type TravelPackage struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	BasePrice float64 `bson:"base_price" json:"basePrice"`
	Currency  string  `bson:"currency" json:"currency"`
	Active    bool    `bson:"active" json:"active"`
}

// DepartureDate is a scheduled instance of a package with its own capacity and price.
type DepartureDate struct {
	ID            string  `bson:"id" json:"id"`
	PackageID     string  `bson:"package_id" json:"packageId"`
	StartDate     string  `bson:"start_date" json:"startDate"` // "YYYY-MM-DD"
	EndDate       string  `bson:"end_date" json:"endDate"`
	Capacity      int     `bson:"capacity" json:"capacity"`
	Booked        int     `bson:"booked" json:"booked"`
	Available     int     `bson:"available" json:"available"`
	PriceOverride float64 `bson:"price_override" json:"priceOverride"` // per-person price for this departure
}

// Price types for catalog add-ons.
const (
	PricePerPerson  = "per_person"
	PricePerBooking = "per_booking"
)

// PackageAddon is a catalog-level optional paid extra.
type PackageAddon struct {
	ID        string  `bson:"id" json:"id"`
	PackageID string  `bson:"package_id" json:"packageId"`
	Name      string  `bson:"name" json:"name"`
	Category  string  `bson:"category" json:"category"`
	Price     float64 `bson:"price" json:"price"`
	PriceType string  `bson:"price_type" json:"priceType"` // per_person or per_booking
}

// ItineraryActivity is a day-specific optional activity offered on a package.
type ItineraryActivity struct {
	ID            string  `bson:"id" json:"id"`
	PackageID     string  `bson:"package_id" json:"packageId"`
	DayNumber     int     `bson:"day_number" json:"dayNumber"`
	ActivityName  string  `bson:"activity_name" json:"activityName"`
	OptionalPrice float64 `bson:"optional_price" json:"optionalPrice"` // per person
}

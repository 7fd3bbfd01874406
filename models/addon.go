package models

// AddonKind distinguishes the two id-spaces a selected add-on may reference.
type AddonKind string

const (
	AddonKindPackage   AddonKind = "package_addon"
	AddonKindItinerary AddonKind = "optional_itinerary"
)

// AddonKey identifies one selected add-on by kind and id. Matching by kind+id
// keeps the catalog and itinerary id-spaces disjoint.
type AddonKey struct {
	Kind AddonKind `bson:"kind" json:"kind"`
	ID   string    `bson:"id" json:"id"`
}

// SelectedAddon is one line in the add-on ledger. Quantity and TotalPrice are
// refreshed on every pricing pass: per-person entries track the current
// participant count, per-booking entries stay at quantity 1.
type SelectedAddon struct {
	Kind       AddonKind `bson:"kind" json:"kind"`
	RefID      string    `bson:"ref_id" json:"refId"`
	Name       string    `bson:"name" json:"name"`
	PriceType  string    `bson:"price_type" json:"priceType"`
	Quantity   int       `bson:"quantity" json:"quantity"`
	UnitPrice  float64   `bson:"unit_price" json:"unitPrice"`
	TotalPrice float64   `bson:"total_price" json:"totalPrice"`
}

// Key returns the ledger key for this entry.
func (a SelectedAddon) Key() AddonKey {
	return AddonKey{Kind: a.Kind, ID: a.RefID}
}

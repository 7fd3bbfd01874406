package models

import "time"

// Booking represents a submitted booking record.
type Booking struct {
	ID              string          `bson:"id" json:"id"` // Unique booking reference (UUID)
	PackageID       string          `bson:"package_id" json:"packageId"`
	DepartureDateID string          `bson:"departure_date_id" json:"departureDateId"`
	Participants    int             `bson:"participants" json:"participants"`
	LeadTraveler    string          `bson:"lead_traveler" json:"leadTraveler"`
	Travelers       []TravelerInfo  `bson:"travelers" json:"travelers"`
	Addons          []SelectedAddon `bson:"addons" json:"addons"`
	CouponCode      string          `bson:"coupon_code,omitempty" json:"couponCode,omitempty"`
	PaymentPlan     string          `bson:"payment_plan" json:"paymentPlan"`
	SpecialRequests string          `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	Pricing         PriceSummary    `bson:"pricing" json:"pricing"`
	Status          string          `bson:"status" json:"status"` // e.g. "confirmed", "pending_payment"
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
}

package models

import "time"

// Coupon discount types.
const (
	CouponPercentage = "percentage"
	CouponFixed      = "fixed"
)

// CouponConditions restrict when a coupon applies and how much it can discount.
type CouponConditions struct {
	MinimumAmount   float64  `bson:"minimum_amount" json:"minimumAmount"`
	MaximumDiscount *float64 `bson:"maximum_discount,omitempty" json:"maximumDiscount,omitempty"`
}

// Coupon is a resolved discount rule. The wizard only ever receives a Coupon
// that the coupon service has already validated.
type Coupon struct {
	Code       string           `bson:"code" json:"code"`
	Type       string           `bson:"type" json:"type"` // percentage or fixed
	Value      float64          `bson:"value" json:"value"`
	Conditions CouponConditions `bson:"conditions" json:"conditions"`
	ValidFrom  time.Time        `bson:"valid_from" json:"validFrom"`
	ValidUntil time.Time        `bson:"valid_until" json:"validUntil"`
	UsageLimit int              `bson:"usage_limit" json:"usageLimit"` // 0 means unlimited
	UsedCount  int              `bson:"used_count" json:"usedCount"`
}

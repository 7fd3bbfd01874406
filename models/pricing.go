package models

// PriceSummary is the computed price breakdown for a booking state. It is
// always derived by the pricing pass, never edited directly.
type PriceSummary struct {
	Subtotal       float64  `bson:"subtotal" json:"subtotal"`
	AddonsTotal    float64  `bson:"addons_total" json:"addonsTotal"`
	CouponDiscount float64  `bson:"coupon_discount" json:"couponDiscount"`
	TotalAmount    float64  `bson:"total_amount" json:"totalAmount"`
	DepositAmount  *float64 `bson:"deposit_amount,omitempty" json:"depositAmount,omitempty"`
	BalanceAmount  *float64 `bson:"balance_amount,omitempty" json:"balanceAmount,omitempty"`
	Currency       string   `bson:"currency" json:"currency"`
}

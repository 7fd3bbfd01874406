package models

// Wizard steps.
const (
	StepDateParticipants = 1
	StepAddons           = 2
	StepTravelers        = 3
	StepPayment          = 4
	StepConfirmation     = 5
)

// Payment plans.
const (
	PlanPayLater = "pay_later"
	PlanDeposit  = "deposit"
	PlanFull     = "full"
)

// BookingState is the aggregate root for one in-progress purchase wizard.
// It is mutated only through the wizard session's operations; Pricing is
// recomputed after every mutation that can affect price.
type BookingState struct {
	SessionID string `bson:"session_id" json:"sessionId"`

	PackageID       string         `bson:"package_id" json:"packageId"`
	DepartureDateID string         `bson:"departure_date_id" json:"departureDateId"`
	DepartureDate   *DepartureDate `bson:"departure_date,omitempty" json:"departureDate,omitempty"`

	Participants int            `bson:"participants" json:"participants"`
	Travelers    []TravelerInfo `bson:"travelers" json:"travelers"`

	SelectedAddons []SelectedAddon `bson:"selected_addons" json:"selectedAddons"`

	CouponCode    string  `bson:"coupon_code" json:"couponCode"`
	AppliedCoupon *Coupon `bson:"applied_coupon,omitempty" json:"appliedCoupon,omitempty"`

	PaymentPlan     string `bson:"payment_plan" json:"paymentPlan"`
	SpecialRequests string `bson:"special_requests" json:"specialRequests"`
	TermsAccepted   bool   `bson:"terms_accepted" json:"termsAccepted"`

	Pricing PriceSummary `bson:"pricing" json:"pricing"`

	CurrentStep    int   `bson:"current_step" json:"currentStep"`
	CompletedSteps []int `bson:"completed_steps" json:"completedSteps"` // sorted, duplicate-free
}

// NewBookingState returns an empty aggregate positioned at step 1 with a
// single blank traveler slot.
func NewBookingState(sessionID, currency string) *BookingState {
	return &BookingState{
		SessionID:      sessionID,
		Participants:   1,
		Travelers:      []TravelerInfo{{ParticipantNumber: 1, IsLeadTraveler: true}},
		SelectedAddons: []SelectedAddon{},
		PaymentPlan:    PlanFull,
		Pricing:        PriceSummary{Currency: currency},
		CurrentStep:    StepDateParticipants,
		CompletedSteps: []int{},
	}
}

// HasCompleted reports whether step n has been marked complete.
func (s *BookingState) HasCompleted(n int) bool {
	for _, done := range s.CompletedSteps {
		if done == n {
			return true
		}
	}
	return false
}

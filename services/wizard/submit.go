package wizard

import (
	"time"

	"voyago/models"

	"github.com/google/uuid"
)

// BuildBooking turns the final wizard state into the record handed to the
// booking-creation collaborator at the step 4→5 transition. It checks the
// gates the engine owns: a selected departure, a full roster, and accepted
// terms. Everything beyond that (payment capture, inventory) is the
// collaborator's concern.
func BuildBooking(s *models.BookingState) (*models.Booking, error) {
	if s.DepartureDateID == "" || s.DepartureDate == nil {
		return nil, NewValidationError("no departure date selected")
	}
	if len(s.Travelers) != s.Participants {
		return nil, NewValidationError("traveler roster does not match participant count")
	}
	if !s.TermsAccepted {
		return nil, NewValidationError("terms have not been accepted")
	}

	status := "confirmed"
	if s.PaymentPlan == models.PlanPayLater || s.PaymentPlan == models.PlanDeposit {
		status = "pending_payment"
	}

	return &models.Booking{
		ID:              uuid.New().String(),
		PackageID:       s.PackageID,
		DepartureDateID: s.DepartureDateID,
		Participants:    s.Participants,
		LeadTraveler:    leadTravelerName(s.Travelers),
		Travelers:       append([]models.TravelerInfo(nil), s.Travelers...),
		Addons:          append([]models.SelectedAddon(nil), s.SelectedAddons...),
		CouponCode:      s.CouponCode,
		PaymentPlan:     s.PaymentPlan,
		SpecialRequests: s.SpecialRequests,
		Pricing:         s.Pricing,
		Status:          status,
		CreatedAt:       time.Now(),
	}, nil
}

func leadTravelerName(travelers []models.TravelerInfo) string {
	for _, t := range travelers {
		if t.IsLeadTraveler {
			return t.FullName
		}
	}
	return ""
}

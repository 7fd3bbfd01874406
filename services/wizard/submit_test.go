package wizard

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyState() *models.BookingState {
	s := stateWithDeparture(1000, 2)
	_ = setLeadTraveler(s, 0)
	_ = mergeTraveler(s, 0, models.TravelerUpdate{FullName: strPtr("Alice")})
	s.TermsAccepted = true
	refreshAddonTotals(s)
	s.Pricing = Recompute(s)
	return s
}

func TestBuildBooking_RequiresDepartureAndTerms(t *testing.T) {
	s := models.NewBookingState("s-1", "USD")
	s.TermsAccepted = true
	_, err := BuildBooking(s)
	assert.Error(t, err)

	s = stateWithDeparture(1000, 2)
	_, err = BuildBooking(s)
	assert.Error(t, err)
}

func TestBuildBooking_CarriesFinalState(t *testing.T) {
	s := readyState()
	s.PaymentPlan = models.PlanFull

	booking, err := BuildBooking(s)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "pkg-1", booking.PackageID)
	assert.Equal(t, "dep-1", booking.DepartureDateID)
	assert.Equal(t, 2, booking.Participants)
	assert.Equal(t, "Alice", booking.LeadTraveler)
	assert.Equal(t, s.Pricing, booking.Pricing)
	assert.Equal(t, "confirmed", booking.Status)
}

func TestBuildBooking_DeferredPlansArePendingPayment(t *testing.T) {
	for _, plan := range []string{models.PlanPayLater, models.PlanDeposit} {
		s := readyState()
		s.PaymentPlan = plan

		booking, err := BuildBooking(s)
		require.NoError(t, err)
		assert.Equal(t, "pending_payment", booking.Status)
	}
}

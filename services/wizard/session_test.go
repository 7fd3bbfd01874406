package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryDraftStore is an in-memory DraftStore for tests.
type memoryDraftStore struct {
	mu       sync.Mutex
	drafts   map[string]*models.BookingState
	failSave bool
	saves    int
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string]*models.BookingState)}
}

func (m *memoryDraftStore) Save(ctx context.Context, state *models.BookingState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave {
		return errors.New("store unavailable")
	}
	m.saves++
	m.drafts[state.SessionID] = cloneState(state)
	return nil
}

func (m *memoryDraftStore) Load(ctx context.Context, sessionID string) (*models.BookingState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	return cloneState(state), nil
}

func (m *memoryDraftStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, sessionID)
	return nil
}

func (m *memoryDraftStore) get(sessionID string) *models.BookingState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drafts[sessionID]
}

func newTestSession(store DraftStore) *Session {
	return NewSession(models.NewBookingState("test-session", "USD"), store, zap.NewNop())
}

func testDeparture(perPerson float64, available int) models.DepartureDate {
	return models.DepartureDate{
		ID:            "dep-1",
		PackageID:     "pkg-1",
		StartDate:     "2026-10-01",
		EndDate:       "2026-10-08",
		Capacity:      available,
		Available:     available,
		PriceOverride: perPerson,
	}
}

func TestSession_SelectDepartureReprices(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())

	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))
	require.NoError(t, session.SetParticipants(2))

	snapshot := session.Snapshot()
	assert.Equal(t, 2000.0, snapshot.Pricing.Subtotal)
	assert.Len(t, snapshot.Travelers, 2)
}

func TestSession_SelectDepartureCapsParticipants(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(500, 10)))
	require.NoError(t, session.SetParticipants(8))

	// Switching to a smaller departure shrinks the party to what fits.
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(500, 3)))

	snapshot := session.Snapshot()
	assert.Equal(t, 3, snapshot.Participants)
	assert.Len(t, snapshot.Travelers, 3)
	assert.Equal(t, 1500.0, snapshot.Pricing.Subtotal)
}

func TestSession_SetParticipantsValidation(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(500, 4)))

	assert.Error(t, session.SetParticipants(0))
	assert.Error(t, session.SetParticipants(5))
	require.NoError(t, session.SetParticipants(4))
}

func TestSession_AddonFlowReprices(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))
	require.NoError(t, session.SetParticipants(2))

	require.NoError(t, session.AddAddon(models.SelectedAddon{
		Kind:      models.AddonKindPackage,
		RefID:     "addon-1",
		Name:      "Airport transfer",
		PriceType: models.PricePerBooking,
		UnitPrice: 300,
	}))
	assert.Equal(t, 300.0, session.Snapshot().Pricing.AddonsTotal)

	require.NoError(t, session.RemoveAddon(models.AddonKey{Kind: models.AddonKindPackage, ID: "addon-1"}))
	assert.Zero(t, session.Snapshot().Pricing.AddonsTotal)
}

func TestSession_CouponReplaceAndRemove(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))
	require.NoError(t, session.SetParticipants(2))

	require.NoError(t, session.ApplyCoupon(models.Coupon{
		Code: "TEN", Type: models.CouponPercentage, Value: 10,
	}))
	assert.Equal(t, 200.0, session.Snapshot().Pricing.CouponDiscount)

	// Applying another coupon replaces the first; at most one is active.
	require.NoError(t, session.ApplyCoupon(models.Coupon{
		Code: "FLAT50", Type: models.CouponFixed, Value: 50,
	}))
	snapshot := session.Snapshot()
	assert.Equal(t, "FLAT50", snapshot.CouponCode)
	assert.Equal(t, 50.0, snapshot.Pricing.CouponDiscount)

	session.RemoveCoupon()
	snapshot = session.Snapshot()
	assert.Empty(t, snapshot.CouponCode)
	assert.Nil(t, snapshot.AppliedCoupon)
	assert.Zero(t, snapshot.Pricing.CouponDiscount)
}

func TestSession_PaymentPlanDrivesDeposit(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(4000, 10)))
	require.NoError(t, session.SetParticipants(2)) // total 8000

	require.NoError(t, session.SetPaymentPlan(models.PlanDeposit))
	snapshot := session.Snapshot()
	require.NotNil(t, snapshot.Pricing.DepositAmount)
	assert.Equal(t, 500.0, *snapshot.Pricing.DepositAmount)

	assert.Error(t, session.SetPaymentPlan("installments"))
}

func TestSession_SpecialRequestsBounded(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())

	long := make([]byte, 50)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, session.SetSpecialRequests(string(long), 10))
	require.NoError(t, session.SetSpecialRequests("window seat please", 100))
	assert.Equal(t, "window seat please", session.Snapshot().SpecialRequests)
}

func TestSession_CheckpointAfterMutation(t *testing.T) {
	store := newMemoryDraftStore()
	session := newTestSession(store)

	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))

	draft := store.get("test-session")
	require.NotNil(t, draft)
	assert.Equal(t, "dep-1", draft.DepartureDateID)
	assert.Equal(t, 1000.0, draft.Pricing.Subtotal)
}

func TestSession_PersistenceFailureIsSwallowed(t *testing.T) {
	store := newMemoryDraftStore()
	store.failSave = true
	session := newTestSession(store)

	// The wizard stays usable even when the draft cannot be saved.
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))
	assert.Equal(t, 1000.0, session.Snapshot().Pricing.Subtotal)
}

func TestSession_SnapshotIsDetached(t *testing.T) {
	session := newTestSession(newMemoryDraftStore())
	require.NoError(t, session.SelectDeparture("pkg-1", testDeparture(1000, 10)))

	snapshot := session.Snapshot()
	snapshot.Travelers[0].FullName = "Mallory"
	snapshot.DepartureDate.PriceOverride = 1

	fresh := session.Snapshot()
	assert.Empty(t, fresh.Travelers[0].FullName)
	assert.Equal(t, 1000.0, fresh.DepartureDate.PriceOverride)
}

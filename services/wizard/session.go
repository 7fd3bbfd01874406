package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"voyago/models"

	"go.uber.org/zap"
)

// Session owns one in-progress booking. All reads and writes of the
// underlying BookingState go through it; every mutation that can affect
// price re-runs the pricing pass synchronously before returning, so callers
// never observe a stale breakdown. A checkpoint of the new snapshot is
// written opportunistically after each mutation; checkpoint failures are
// logged and swallowed because the wizard must stay usable without the
// draft store.
type Session struct {
	mu     sync.Mutex
	state  *models.BookingState
	drafts DraftStore
	logger *zap.Logger
}

// NewSession wraps a freshly created or restored aggregate.
func NewSession(state *models.BookingState, drafts DraftStore, logger *zap.Logger) *Session {
	return &Session{state: state, drafts: drafts, logger: logger}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SessionID
}

// Snapshot returns a deep copy of the current state, safe to hand to other
// goroutines. The autosave loop reads through this at fire time rather than
// through a captured value, so checkpoints never serialize stale data.
func (s *Session) Snapshot() *models.BookingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// SelectDeparture replaces the cached departure record wholesale and caps the
// participant count at the departure's availability. The cached copy is owned
// by the store and never partially mutated.
func (s *Session) SelectDeparture(packageID string, date models.DepartureDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date.Available < 1 {
		return NewValidationError(fmt.Sprintf("departure %s has no availability", date.ID))
	}
	s.state.PackageID = packageID
	s.state.DepartureDateID = date.ID
	s.state.DepartureDate = &date
	if s.state.Participants > date.Available {
		resizeRoster(s.state, date.Available)
	}
	s.recalculate()
	return nil
}

// SetParticipants resizes the roster to count travelers. Growth appends blank
// records, shrinking discards trailing data.
func (s *Session) SetParticipants(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count < 1 {
		return NewValidationError(fmt.Sprintf("participant count %d must be at least 1", count))
	}
	if s.state.DepartureDate != nil && count > s.state.DepartureDate.Available {
		return NewValidationError(fmt.Sprintf("participant count %d exceeds %d available seats",
			count, s.state.DepartureDate.Available))
	}
	resizeRoster(s.state, count)
	s.recalculate()
	return nil
}

// UpdateTraveler merges a partial edit into the traveler at index.
func (s *Session) UpdateTraveler(index int, upd models.TravelerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := mergeTraveler(s.state, index, upd); err != nil {
		return err
	}
	s.checkpoint()
	return nil
}

// CopyTravelerData copies all fields from one slot to another, renumbering
// the copy and never marking it lead.
func (s *Session) CopyTravelerData(fromIndex, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := copyTraveler(s.state, fromIndex, toIndex); err != nil {
		return err
	}
	s.checkpoint()
	return nil
}

// SetLeadTraveler designates exactly one traveler as lead.
func (s *Session) SetLeadTraveler(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := setLeadTraveler(s.state, index); err != nil {
		return err
	}
	s.checkpoint()
	return nil
}

// AddAddon records one selected add-on and reprices.
func (s *Session) AddAddon(entry models.SelectedAddon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := appendAddon(s.state, entry); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// RemoveAddon drops the add-on matching key and reprices.
func (s *Session) RemoveAddon(key models.AddonKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := removeAddon(s.state, key); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// ClearAddons empties the ledger and reprices.
func (s *Session) ClearAddons() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clearAddons(s.state)
	s.recalculate()
}

// ApplyCoupon installs a resolved coupon, unconditionally replacing any
// previously applied one. Validation and remote lookup happen before this
// call; the slot only cares that a coupon object is present.
func (s *Session) ApplyCoupon(coupon models.Coupon) error {
	if coupon.Code == "" {
		return NewValidationError("coupon has no code")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CouponCode = coupon.Code
	s.state.AppliedCoupon = &coupon
	s.recalculate()
	return nil
}

// RemoveCoupon clears the applied coupon and resets the code.
func (s *Session) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CouponCode = ""
	s.state.AppliedCoupon = nil
	s.recalculate()
}

// SetPaymentPlan switches the payment plan and reprices, since the deposit
// split depends on it.
func (s *Session) SetPaymentPlan(plan string) error {
	switch plan {
	case models.PlanPayLater, models.PlanDeposit, models.PlanFull:
	default:
		return NewValidationError(fmt.Sprintf("unknown payment plan %q", plan))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PaymentPlan = plan
	s.recalculate()
	return nil
}

// SetSpecialRequests stores the free-text requests, bounded by maxLen.
func (s *Session) SetSpecialRequests(text string, maxLen int) error {
	if maxLen > 0 && len(text) > maxLen {
		return NewValidationError(fmt.Sprintf("special requests exceed %d characters", maxLen))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SpecialRequests = text
	s.checkpoint()
	return nil
}

// AcceptTerms records the submission gate.
func (s *Session) AcceptTerms(accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TermsAccepted = accepted
	s.checkpoint()
}

// Next advances one step, clamped at the confirmation step.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	advanceStep(s.state)
	s.checkpoint()
}

// Previous moves back one step, clamped at step 1.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	retreatStep(s.state)
	s.checkpoint()
}

// GoTo jumps directly to step n.
func (s *Session) GoTo(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := jumpToStep(s.state, n); err != nil {
		return err
	}
	s.checkpoint()
	return nil
}

// Complete marks step n as done. Repeated calls for the same n are no-ops.
func (s *Session) Complete(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := markStepComplete(s.state, n); err != nil {
		return err
	}
	s.checkpoint()
	return nil
}

// recalculate refreshes add-on line totals and replaces the pricing snapshot,
// then checkpoints. Callers must hold s.mu.
func (s *Session) recalculate() {
	refreshAddonTotals(s.state)
	s.state.Pricing = Recompute(s.state)
	s.checkpoint()
}

// checkpoint writes the current snapshot to the draft store. Failures are
// logged and swallowed. Callers must hold s.mu.
func (s *Session) checkpoint() {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Save(context.Background(), cloneState(s.state)); err != nil {
		s.logger.Warn("draft checkpoint failed",
			zap.String("sessionID", s.state.SessionID), zap.Error(err))
	}
}

// cloneState deep-copies a BookingState through its JSON form, the same shape
// the draft store persists.
func cloneState(s *models.BookingState) *models.BookingState {
	data, err := json.Marshal(s)
	if err != nil {
		// BookingState contains nothing unmarshalable; treat this as a bug.
		panic(fmt.Sprintf("clone booking state: %v", err))
	}
	var out models.BookingState
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone booking state: %v", err))
	}
	return &out
}

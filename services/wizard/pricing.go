package wizard

import "voyago/models"

// Deposit rule: bookings under the threshold take the small deposit, the rest
// take the large one.
const (
	depositThreshold = 10000
	depositSmall     = 500
	depositLarge     = 1000
)

// Recompute derives the full price breakdown from the rest of the booking
// state. It is a pure function: identical inputs always yield an identical
// summary. Callers refresh add-on line totals first (see refreshAddonTotals)
// so the summary and the ledger lines agree.
func Recompute(s *models.BookingState) models.PriceSummary {
	summary := models.PriceSummary{Currency: s.Pricing.Currency}

	perPerson := 0.0
	if s.DepartureDate != nil {
		perPerson = s.DepartureDate.PriceOverride
	}
	summary.Subtotal = perPerson * float64(s.Participants)

	for _, addon := range s.SelectedAddons {
		summary.AddonsTotal += addonLineTotal(addon, s.Participants)
	}

	beforeDiscount := summary.Subtotal + summary.AddonsTotal
	summary.CouponDiscount = discountFor(s.AppliedCoupon, beforeDiscount)

	summary.TotalAmount = beforeDiscount - summary.CouponDiscount
	if summary.TotalAmount < 0 {
		summary.TotalAmount = 0
	}

	if s.PaymentPlan == models.PlanDeposit {
		deposit := float64(depositLarge)
		if summary.TotalAmount < depositThreshold {
			deposit = depositSmall
		}
		balance := summary.TotalAmount - deposit
		summary.DepositAmount = &deposit
		summary.BalanceAmount = &balance
	}
	return summary
}

// discountFor computes the coupon discount against the pre-discount amount.
// Percentage discounts are clamped to the coupon's maximum-discount cap when
// present; both kinds are clamped so the discount never exceeds the amount
// it applies to.
func discountFor(coupon *models.Coupon, beforeDiscount float64) float64 {
	if coupon == nil {
		return 0
	}
	var discount float64
	switch coupon.Type {
	case models.CouponPercentage:
		discount = beforeDiscount * coupon.Value / 100
		if cap := coupon.Conditions.MaximumDiscount; cap != nil && discount > *cap {
			discount = *cap
		}
	case models.CouponFixed:
		discount = coupon.Value
	}
	if discount > beforeDiscount {
		discount = beforeDiscount
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// addonLineTotal prices one ledger line against the current participant count.
// Per-person entries scale with participants; per-booking entries do not.
func addonLineTotal(addon models.SelectedAddon, participants int) float64 {
	return addon.UnitPrice * float64(effectiveQuantity(addon, participants))
}

func effectiveQuantity(addon models.SelectedAddon, participants int) int {
	if addon.PriceType == models.PricePerBooking {
		return 1
	}
	return participants
}

// refreshAddonTotals rewrites each ledger line's quantity and line total from
// the current participant count, so stored lines never go stale when the
// party size changes after selection.
func refreshAddonTotals(s *models.BookingState) {
	for i := range s.SelectedAddons {
		qty := effectiveQuantity(s.SelectedAddons[i], s.Participants)
		s.SelectedAddons[i].Quantity = qty
		s.SelectedAddons[i].TotalPrice = s.SelectedAddons[i].UnitPrice * float64(qty)
	}
}

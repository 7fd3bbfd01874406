package coupon

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	couponRepo "voyago/database/repository/coupon"
	"voyago/models"
)

// RejectionError explains why a code could not be applied. The wizard shows
// the message to the user and never retries on its own.
type RejectionError struct {
	Code    string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newRejection(msg string) error {
	return &RejectionError{Code: "couponRejected", Message: msg}
}

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// CouponService resolves a code string into a Coupon the wizard can apply.
type CouponService interface {
	Validate(code string, orderAmount float64) (*models.Coupon, error)
	RecordUse(code string) error
}

// DefaultCouponService implements CouponService against the coupon store.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
	Now  func() time.Time // overridable in tests
}

func (s *DefaultCouponService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Validate checks format, existence, validity window, usage limit and
// minimum order amount. On success it returns the resolved coupon; the
// engine's coupon slot receives it via ApplyCoupon and performs no further
// validation of its own.
func (s *DefaultCouponService) Validate(code string, orderAmount float64) (*models.Coupon, error) {
	if !codePattern.MatchString(code) {
		return nil, newRejection("coupon code format is invalid")
	}

	coupon, err := s.Repo.GetByCode(code)
	if errors.Is(err, couponRepo.ErrCouponNotFound) {
		return nil, newRejection("coupon code not recognized")
	}
	if err != nil {
		return nil, fmt.Errorf("coupon lookup failed: %w", err)
	}

	now := s.now()
	if now.Before(coupon.ValidFrom) {
		return nil, newRejection("coupon is not valid yet")
	}
	if now.After(coupon.ValidUntil) {
		return nil, newRejection("coupon has expired")
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, newRejection("coupon usage limit reached")
	}
	if orderAmount < coupon.Conditions.MinimumAmount {
		return nil, newRejection(fmt.Sprintf("order total below the %.2f minimum for this coupon",
			coupon.Conditions.MinimumAmount))
	}
	return coupon, nil
}

// RecordUse bumps the usage counter after a successful submission.
func (s *DefaultCouponService) RecordUse(code string) error {
	if code == "" {
		return nil
	}
	return s.Repo.IncrementUsage(code)
}

package coupon

import (
	"testing"
	"time"

	couponRepo "voyago/database/repository/coupon"
	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
	uses    map[string]int
}

func newFakeCouponRepo(coupons ...*models.Coupon) *fakeCouponRepo {
	repo := &fakeCouponRepo{
		coupons: make(map[string]*models.Coupon),
		uses:    make(map[string]int),
	}
	for _, c := range coupons {
		repo.coupons[c.Code] = c
	}
	return repo
}

func (f *fakeCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, couponRepo.ErrCouponNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCouponRepo) IncrementUsage(code string) error {
	if _, ok := f.coupons[code]; !ok {
		return couponRepo.ErrCouponNotFound
	}
	f.uses[code]++
	return nil
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testCoupon() *models.Coupon {
	return &models.Coupon{
		Code:       "SAVE10",
		Type:       models.CouponPercentage,
		Value:      10,
		Conditions: models.CouponConditions{MinimumAmount: 500},
		ValidFrom:  testNow.AddDate(0, -1, 0),
		ValidUntil: testNow.AddDate(0, 1, 0),
		UsageLimit: 2,
	}
}

func newTestService(coupons ...*models.Coupon) (*DefaultCouponService, *fakeCouponRepo) {
	repo := newFakeCouponRepo(coupons...)
	return &DefaultCouponService{
		Repo: repo,
		Now:  func() time.Time { return testNow },
	}, repo
}

func TestValidate_ResolvesCoupon(t *testing.T) {
	svc, _ := newTestService(testCoupon())

	coupon, err := svc.Validate("SAVE10", 2300)

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Equal(t, 10.0, coupon.Value)
}

func TestValidate_RejectsBadFormat(t *testing.T) {
	svc, _ := newTestService(testCoupon())

	for _, code := range []string{"", "ab", "lower case", "WAY_TOO_LONG_FOR_A_COUPON_CODE_FIELD"} {
		_, err := svc.Validate(code, 1000)
		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection, "code %q", code)
	}
}

func TestValidate_RejectsUnknownCode(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Validate("GHOST", 1000)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
}

func TestValidate_RejectsOutsideWindow(t *testing.T) {
	early := testCoupon()
	early.Code = "EARLY"
	early.ValidFrom = testNow.AddDate(0, 0, 1)

	late := testCoupon()
	late.Code = "LATE"
	late.ValidUntil = testNow.AddDate(0, 0, -1)

	svc, _ := newTestService(early, late)

	_, err := svc.Validate("EARLY", 1000)
	assert.Error(t, err)
	_, err = svc.Validate("LATE", 1000)
	assert.Error(t, err)
}

func TestValidate_RejectsBelowMinimum(t *testing.T) {
	svc, _ := newTestService(testCoupon())

	_, err := svc.Validate("SAVE10", 499)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
}

func TestValidate_RejectsExhaustedCoupon(t *testing.T) {
	used := testCoupon()
	used.UsedCount = 2
	svc, _ := newTestService(used)

	_, err := svc.Validate("SAVE10", 1000)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
}

func TestRecordUse(t *testing.T) {
	svc, repo := newTestService(testCoupon())

	require.NoError(t, svc.RecordUse("SAVE10"))
	assert.Equal(t, 1, repo.uses["SAVE10"])

	// Bookings without a coupon are a no-op.
	require.NoError(t, svc.RecordUse(""))
}

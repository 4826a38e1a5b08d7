package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponValidation(t *testing.T) {
	s := testStore(t)
	s.AddCoupon("  LAUNCH20  ", 20, 3)

	tests := []struct {
		name  string
		code  string
		found bool
	}{
		{"exact", "LAUNCH20", true},
		{"lowercase", "launch20", true},
		{"padded", "  launch20 ", true},
		{"unknown", "NOPE", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.ValidateCoupon(tt.code)
			if tt.found {
				require.NotNil(t, c)
				assert.Equal(t, "LAUNCH20", c.Code, "stored code is trimmed on create")
			} else {
				assert.Nil(t, c)
			}
		})
	}
}

func TestCouponSingleUseLimit(t *testing.T) {
	s := testStore(t)
	s.AddCoupon("ONCE", 50, 1)

	first := s.UseCoupon("once")
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Uses)

	second := s.UseCoupon("once")
	assert.Nil(t, second, "an exhausted coupon fails re-validation")
}

func TestCouponZeroMaxUsesNeverValidates(t *testing.T) {
	s := testStore(t)
	s.AddCoupon("DORMANT", 10, 0)
	assert.Nil(t, s.ValidateCoupon("DORMANT"))
	assert.Nil(t, s.UseCoupon("DORMANT"))
}

func TestCouponToggleAndDelete(t *testing.T) {
	s := testStore(t)
	c := s.AddCoupon("FLIP", 10, 5)
	require.True(t, c.Active)

	toggled := s.ToggleCoupon(c.ID)
	require.NotNil(t, toggled)
	assert.False(t, toggled.Active)
	assert.Nil(t, s.ValidateCoupon("FLIP"), "inactive coupons never validate")

	toggled = s.ToggleCoupon(c.ID)
	assert.True(t, toggled.Active)
	assert.NotNil(t, s.ValidateCoupon("FLIP"))

	assert.Nil(t, s.ToggleCoupon(999))
	assert.True(t, s.DeleteCoupon(c.ID))
	assert.False(t, s.DeleteCoupon(c.ID))
}

func TestCouponsKeepInsertionOrder(t *testing.T) {
	s := testStore(t)
	s.AddCoupon("A", 5, 1)
	s.AddCoupon("B", 5, 1)

	coupons := s.Coupons()
	require.Len(t, coupons, 2)
	assert.Equal(t, "A", coupons[0].Code, "coupons append at the tail")
	assert.Greater(t, coupons[1].ID, coupons[0].ID)
}

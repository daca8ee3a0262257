package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestBaseRate(t *testing.T) {
	assert.True(t, d("2.5").Equal(BaseRate(CategoryApartment)))
	assert.True(t, d("3.0").Equal(BaseRate(CategoryCorporateOffice)))
	assert.True(t, d("2.8").Equal(BaseRate(CategoryEstate)))
	// Unknown categories fall back instead of failing.
	assert.True(t, d("2.5").Equal(BaseRate("warehouse")))
	assert.True(t, d("2.5").Equal(BaseRate("")))
}

func TestServiceMultiplier(t *testing.T) {
	assert.True(t, d("1").Equal(ServiceMultiplier(TierStandard)))
	assert.True(t, d("1.25").Equal(ServiceMultiplier(TierPremium)))
	assert.True(t, d("1").Equal(ServiceMultiplier("deluxe")))
}

func TestAmount_NoAddons(t *testing.T) {
	cases := []struct {
		name     string
		category string
		quantity string
		tier     string
		want     string
	}{
		{"apartment standard", CategoryApartment, "100", TierStandard, "250"},
		{"corporate premium", CategoryCorporateOffice, "100", TierPremium, "375"},
		{"estate standard", CategoryEstate, "10", TierStandard, "28"},
		{"fractional quantity", CategoryApartment, "12.345", TierPremium, "38.58"},
		{"zero quantity", CategoryEstate, "0", TierPremium, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Amount(tc.category, d(tc.quantity), tc.tier, nil)
			assert.True(t, d(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestAmount_UrgentAlone(t *testing.T) {
	base := Amount(CategoryApartment, d("40"), TierStandard, nil)
	got := Amount(CategoryApartment, d("40"), TierStandard, []string{ServiceUrgent})
	assert.True(t, base.Mul(d("1.3")).Round(2).Equal(got), "got %s", got)
}

func TestAmount_AdditiveBeforeMultiplicative(t *testing.T) {
	quantity := d("100")
	// base 250 + sorting 50 + special handling 75 = 375, then x1.3 = 487.50
	got := Amount(CategoryApartment, quantity, TierStandard, []string{
		ServiceSorting, ServiceSpecialHandling, ServiceUrgent,
	})
	assert.True(t, d("487.5").Equal(got), "got %s", got)

	// Order of the input set must not matter; the surcharge order is fixed.
	reordered := Amount(CategoryApartment, quantity, TierStandard, []string{
		ServiceUrgent, ServiceSpecialHandling, ServiceSorting,
	})
	assert.True(t, got.Equal(reordered))
}

func TestAmount_UnknownCodesIgnored(t *testing.T) {
	plain := Amount(CategoryEstate, d("20"), TierStandard, nil)
	got := Amount(CategoryEstate, d("20"), TierStandard, []string{"gift_wrap", ""})
	assert.True(t, plain.Equal(got))
}

func TestAmount_ZeroQuantityWithAddons(t *testing.T) {
	got := Amount(CategoryCorporateOffice, d("0"), TierPremium, []string{
		ServiceSorting, ServiceSpecialHandling, ServiceUrgent,
	})
	assert.True(t, got.IsZero())
}

func TestAmount_HalfUpRounding(t *testing.T) {
	// 1.11 x 2.5 x 1.25 = 3.46875 -> 3.47
	got := Amount(CategoryApartment, d("1.11"), TierPremium, nil)
	assert.Equal(t, "3.47", got.StringFixed(2))
}

package billing

import "github.com/shopspring/decimal"

var (
	sortingSurcharge         = decimal.NewFromFloat(0.5)
	specialHandlingSurcharge = decimal.NewFromFloat(0.75)
	urgentMultiplier         = decimal.NewFromFloat(1.3)
)

// Amount computes the billable amount for one collection engagement.
//
// base = quantity x BaseRate(category) x ServiceMultiplier(tier), then
// additive surcharges (sorting, special_handling) are applied before the
// urgent multiplier. The additive-before-multiplicative order is load
// bearing: swapping it changes results. Unrecognized service codes are
// ignored. The result is rounded half-up to 2 decimal places.
func Amount(category string, quantity decimal.Decimal, tier string, additionalServices []string) decimal.Decimal {
	amount := quantity.Mul(BaseRate(category)).Mul(ServiceMultiplier(tier))

	services := make(map[string]bool, len(additionalServices))
	for _, code := range additionalServices {
		services[code] = true
	}

	if services[ServiceSorting] {
		amount = amount.Add(quantity.Mul(sortingSurcharge))
	}
	if services[ServiceSpecialHandling] {
		amount = amount.Add(quantity.Mul(specialHandlingSurcharge))
	}
	if services[ServiceUrgent] {
		amount = amount.Mul(urgentMultiplier)
	}

	return amount.Round(2)
}

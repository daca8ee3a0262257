// Package billing holds the rate table and invoice amount calculation.
// Everything here is pure: no clock, no database, no side effects.
package billing

import "github.com/shopspring/decimal"

// Customer categories driving the base rate lookup.
const (
	CategoryApartment       = "apartment"
	CategoryCorporateOffice = "corporate_office"
	CategoryEstate          = "estate"
)

// Service tiers driving the rate multiplier.
const (
	TierStandard = "standard"
	TierPremium  = "premium"
)

// Additional service codes carrying a surcharge.
const (
	ServiceSorting         = "sorting"
	ServiceSpecialHandling = "special_handling"
	ServiceUrgent          = "urgent"
)

var baseRates = map[string]decimal.Decimal{
	CategoryApartment:       decimal.NewFromFloat(2.5),
	CategoryCorporateOffice: decimal.NewFromFloat(3.0),
	CategoryEstate:          decimal.NewFromFloat(2.8),
}

var serviceMultipliers = map[string]decimal.Decimal{
	TierStandard: decimal.NewFromInt(1),
	TierPremium:  decimal.NewFromFloat(1.25),
}

// defaultBaseRate applies when the category is not in the table. Categories
// are constrained upstream by the customer type enumeration, so this path
// should be unreachable, but the lookup must never fail.
var defaultBaseRate = decimal.NewFromFloat(2.5)

// BaseRate returns the per-kilogram rate for a customer category.
func BaseRate(category string) decimal.Decimal {
	if rate, ok := baseRates[category]; ok {
		return rate
	}
	return defaultBaseRate
}

// ServiceMultiplier returns the billing multiplier for a service tier.
// Unknown tiers bill at the standard multiplier.
func ServiceMultiplier(tier string) decimal.Decimal {
	if m, ok := serviceMultipliers[tier]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// ValidTier reports whether the tier is a recognized service tier.
func ValidTier(tier string) bool {
	_, ok := serviceMultipliers[tier]
	return ok
}

// ValidCategory reports whether the category is a recognized customer type.
func ValidCategory(category string) bool {
	_, ok := baseRates[category]
	return ok
}

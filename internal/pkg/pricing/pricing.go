// Package pricing holds the platform's pure business rules: commission,
// discounts, trial periods and the food-waste estimate.
package pricing

import (
	"math"
	"time"
)

// Commission tiers. Only the trial rate is ever charged today; the
// standard tier exists on the data model but no transition activates it.
const (
	TierTrial    = "trial"
	TierStandard = "standard"

	trialRate    = 0.10
	standardRate = 0.15
)

// TrialPeriod is the free window granted to new customers.
const TrialPeriod = 30 * 24 * time.Hour

// WastePerOrderKg is the estimated kilograms of food diverted from waste
// per completed order.
const WastePerOrderKg = 0.5

// CommissionRateFor returns the platform commission rate for a tier.
// Every tier currently resolves to the trial rate; tier upgrades are an
// unwired extension point.
func CommissionRateFor(tier string) float64 {
	_ = tier
	return trialRate
}

// CommissionAmount is the platform's cut of an order total.
func CommissionAmount(total, rate float64) float64 {
	return total * rate
}

// DiscountPercentage computes the integer discount for a surplus listing,
// floor((original-discounted)/original*100). Inputs must satisfy
// 0 < discounted <= original; the result is then always in [0, 100].
func DiscountPercentage(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Floor((original - discounted) / original * 100))
}

// IsTrialActive reports whether a trial window is still open at now.
// A user without a trial end date has no trial.
func IsTrialActive(now time.Time, trialEnd *time.Time) bool {
	if trialEnd == nil {
		return false
	}
	return now.Before(*trialEnd)
}

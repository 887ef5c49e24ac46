// Package pricing implements the discount rule evaluator. Evaluation is a
// pure function of the expiry date, the rule set, a reference instant and
// the selling price; it never fails and holds no state.
package pricing

import (
	"math"
	"time"

	"github.com/vijaykr338/ShopEase/models"
)

// Quote is the outcome of evaluating the rule set against one product.
type Quote struct {
	DiscountPercentage float64
	DiscountedPrice    float64
}

// DaysToExpiry returns the number of whole days between reference and
// expiry, floored. A product expiring in 23.9 hours reports 0 days; an
// already-expired product reports a negative value.
func DaysToExpiry(expiry, reference time.Time) int {
	return int(math.Floor(expiry.Sub(reference).Hours() / 24))
}

// Evaluate selects the applicable discount for a product expiring at
// expiry. A rule matches when daysToExpiry <= rule.DaysBeforeExpiry, so a
// product close to expiry can match several thresholds at once. Among
// matches the highest discount wins ("best offer", not tightest window);
// equal discounts are broken by the smallest DaysBeforeExpiry. With no
// match the product sells at full price.
func Evaluate(expiry time.Time, rules []models.DiscountRule, reference time.Time, sellingPrice float64) Quote {
	days := DaysToExpiry(expiry, reference)

	var best *models.DiscountRule
	for i := range rules {
		r := &rules[i]
		if days > r.DaysBeforeExpiry {
			continue
		}
		if best == nil ||
			r.DiscountPercentage > best.DiscountPercentage ||
			(r.DiscountPercentage == best.DiscountPercentage && r.DaysBeforeExpiry < best.DaysBeforeExpiry) {
			best = r
		}
	}

	if best == nil {
		return Quote{DiscountPercentage: 0, DiscountedPrice: sellingPrice}
	}
	return Quote{
		DiscountPercentage: best.DiscountPercentage,
		DiscountedPrice:    Round2(sellingPrice * (1 - best.DiscountPercentage/100)),
	}
}

// Round2 rounds half-up to two decimal places, matching currency display.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

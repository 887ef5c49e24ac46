package models

// DiscountRule applies DiscountPercentage off the selling price when a
// product has DaysBeforeExpiry or fewer whole days left before expiry.
// Many rules may match one product; the evaluator picks a single winner.
type DiscountRule struct {
	ID                 string  `json:"id"`
	DaysBeforeExpiry   int     `json:"daysBeforeExpiry"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// Validate checks the caller-supplied fields of a rule.
func (r *DiscountRule) Validate() error {
	if r.DaysBeforeExpiry <= 0 {
		return NewValidationError("discount rule", "daysBeforeExpiry", "must be positive", r.DaysBeforeExpiry)
	}
	if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
		return NewValidationError("discount rule", "discountPercentage", "must be between 0 and 100", r.DiscountPercentage)
	}
	return nil
}

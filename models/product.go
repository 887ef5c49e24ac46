package models

import "time"

// Product represents a perishable catalog item. DiscountPercentage and
// DiscountedPrice are derived fields owned by the store's recalculation
// pass; values supplied by callers are overwritten there.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	QuantityInStock    int       `json:"quantityInStock"`
	ManufacturingDate  time.Time `json:"manufacturingDate"`
	ExpiryDate         time.Time `json:"expiryDate"`
	CostPrice          float64   `json:"costPrice"`
	SellingPrice       float64   `json:"sellingPrice"`
	DiscountPercentage float64   `json:"discountPercentage"`
	DiscountedPrice    float64   `json:"discountedPrice"`
}

// Validate checks the caller-supplied fields of a product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("product", "name", "cannot be empty", p.Name)
	}
	if p.QuantityInStock < 0 {
		return NewValidationError("product", "quantityInStock", "must be non-negative", p.QuantityInStock)
	}
	if p.CostPrice < 0 {
		return NewValidationError("product", "costPrice", "must be non-negative", p.CostPrice)
	}
	if p.SellingPrice < 0 {
		return NewValidationError("product", "sellingPrice", "must be non-negative", p.SellingPrice)
	}
	if !p.ExpiryDate.After(p.ManufacturingDate) {
		return NewValidationError("product", "expiryDate", "must be after manufacturing date", p.ExpiryDate)
	}
	return nil
}

package store

import (
	"log"
	"time"

	"github.com/vijaykr338/ShopEase/models"
)

// Seed loads the built-in sample catalog into an empty store and prices
// it against the seeded rule ladder, so the first render already shows
// consistent discounts. Seeding a non-empty store is a no-op.
func (s *Store) Seed() {
	s.mu.Lock()

	if len(s.products) > 0 || len(s.customers) > 0 || len(s.rules) > 0 {
		s.mu.Unlock()
		log.Println("Store already has data. Skipping seed.")
		return
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, p := range sampleProducts(today) {
		p.ID = s.newID()
		p.DiscountPercentage = 0
		p.DiscountedPrice = p.SellingPrice
		s.products = append(s.products, p)
	}
	for _, c := range sampleCustomers() {
		c.ID = s.newID()
		s.customers = append(s.customers, c)
	}
	for _, r := range sampleDiscountRules() {
		r.ID = s.newID()
		s.rules = append(s.rules, r)
	}

	s.recalculate()

	nProducts, nCustomers, nRules := len(s.products), len(s.customers), len(s.rules)
	s.mu.Unlock()

	s.changes.Record("store", "seed", "", "sample catalog loaded")
	s.notify()
	log.Printf("Seeded %d products, %d customers, %d discount rules", nProducts, nCustomers, nRules)
}

// sampleProducts returns the demo inventory. Expiry offsets are relative
// to today so the seeded catalog always spans the rule thresholds: some
// items discounted heavily, some lightly, some at full price.
func sampleProducts(today time.Time) []models.Product {
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	return []models.Product{
		{
			Name:              "Organic Milk",
			Category:          "Dairy",
			QuantityInStock:   25,
			ManufacturingDate: day(-14),
			ExpiryDate:        day(21),
			CostPrice:         1.50,
			SellingPrice:      2.50,
		},
		{
			Name:              "Whole Wheat Bread",
			Category:          "Bakery",
			QuantityInStock:   15,
			ManufacturingDate: day(-2),
			ExpiryDate:        day(5),
			CostPrice:         1.20,
			SellingPrice:      2.00,
		},
		{
			Name:              "Fresh Eggs (dozen)",
			Category:          "Dairy",
			QuantityInStock:   30,
			ManufacturingDate: day(-7),
			ExpiryDate:        day(60),
			CostPrice:         2.00,
			SellingPrice:      3.50,
		},
		{
			Name:              "Greek Yogurt",
			Category:          "Dairy",
			QuantityInStock:   8,
			ManufacturingDate: day(-10),
			ExpiryDate:        day(12),
			CostPrice:         0.90,
			SellingPrice:      1.80,
		},
		{
			Name:              "Orange Juice 1L",
			Category:          "Beverages",
			QuantityInStock:   40,
			ManufacturingDate: day(-30),
			ExpiryDate:        day(150),
			CostPrice:         1.10,
			SellingPrice:      2.20,
		},
		{
			Name:              "Chicken Breast 500g",
			Category:          "Meat",
			QuantityInStock:   12,
			ManufacturingDate: day(-1),
			ExpiryDate:        day(3),
			CostPrice:         3.40,
			SellingPrice:      5.60,
		},
	}
}

func sampleCustomers() []models.Customer {
	return []models.Customer{
		{
			Name:                   "John Smith",
			Email:                  "john@example.com",
			Phone:                  "123-456-7890",
			Address:                "123 Main St, City",
			Distance:               1.2,
			NotificationPreference: models.NotifyEmail,
		},
		{
			Name:                   "Sarah Johnson",
			Email:                  "sarah@example.com",
			Phone:                  "234-567-8901",
			Address:                "456 Oak Ave, City",
			Distance:               3.5,
			NotificationPreference: models.NotifySMS,
		},
		{
			Name:                   "Priya Patel",
			Email:                  "priya@example.com",
			Phone:                  "345-678-9012",
			Address:                "789 Elm Rd, City",
			Distance:               0.6,
			NotificationPreference: models.NotifyPush,
		},
	}
}

func sampleDiscountRules() []models.DiscountRule {
	return []models.DiscountRule{
		{DaysBeforeExpiry: 90, DiscountPercentage: 15}, // 3 months
		{DaysBeforeExpiry: 30, DiscountPercentage: 30}, // 1 month
		{DaysBeforeExpiry: 7, DiscountPercentage: 50},  // 1 week
	}
}

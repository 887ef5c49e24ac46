// Package store owns the authoritative in-memory collections and the
// mutation surface the web layer calls. Every mutation that can change a
// discount outcome re-prices the whole catalog before it returns, so
// readers always see a consistently priced snapshot.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vijaykr338/ShopEase/models"
	"github.com/vijaykr338/ShopEase/pricing"
)

const changeLogCapacity = 100

// Config carries the tunable thresholds used by the dashboard statistics.
type Config struct {
	LowStockThreshold  int
	ExpiringWindowDays int
}

// Store holds the product, customer and discount-rule collections. All
// reads return copies; the collections are never handed out by reference.
type Store struct {
	mu        sync.RWMutex
	products  []models.Product
	customers []models.Customer
	rules     []models.DiscountRule

	lowStockThreshold  int
	expiringWindowDays int

	// now is sampled once per recalculation pass so every product in a
	// pass is priced against the same instant. Overridable in tests.
	now   func() time.Time
	newID func() string

	changes *ChangeLog

	subMu       sync.Mutex
	subscribers []func()
}

// New creates an empty store. Zero config values fall back to the
// defaults (low stock below 10 units, expiring within 90 days).
func New(cfg Config) *Store {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 10
	}
	if cfg.ExpiringWindowDays <= 0 {
		cfg.ExpiringWindowDays = 90
	}
	return &Store{
		lowStockThreshold:  cfg.LowStockThreshold,
		expiringWindowDays: cfg.ExpiringWindowDays,
		now:                time.Now,
		newID:              uuid.NewString,
		changes:            NewChangeLog(changeLogCapacity),
	}
}

// Subscribe registers a callback invoked after every completed mutation.
// Callbacks run outside the store lock and may read snapshots freely.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Changes exposes the mutation change log for the debug endpoints.
func (s *Store) Changes() *ChangeLog {
	return s.changes
}

// recalculate re-derives every product's discount fields from the current
// rule set. Caller must hold the write lock; running under the lock is
// what makes a pass atomic for readers.
func (s *Store) recalculate() {
	reference := s.now()
	for i := range s.products {
		q := pricing.Evaluate(s.products[i].ExpiryDate, s.rules, reference, s.products[i].SellingPrice)
		s.products[i].DiscountPercentage = q.DiscountPercentage
		s.products[i].DiscountedPrice = q.DiscountedPrice
	}
}

// Products returns a snapshot of the product collection.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Customers returns a snapshot of the customer collection.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// DiscountRules returns a snapshot of the rule collection.
func (s *Store) DiscountRules() []models.DiscountRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DiscountRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// DashboardStats recomputes the aggregate statistics from the current
// collections. Nothing is cached, so the result is never stale.
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reference := s.now()
	stats := models.DashboardStats{
		TotalProducts:  len(s.products),
		TotalCustomers: len(s.customers),
	}
	for _, p := range s.products {
		if p.QuantityInStock < s.lowStockThreshold {
			stats.LowStockItems++
		}
		// Expired products count as expiring: negative days are below the window.
		if pricing.DaysToExpiry(p.ExpiryDate, reference) < s.expiringWindowDays {
			stats.ExpiringItems++
		}
		if p.DiscountPercentage > 0 {
			stats.LossPrevented += (p.SellingPrice - p.DiscountedPrice) * float64(p.QuantityInStock)
		}
	}
	return stats
}

// AddProduct validates and inserts a new product. The discount fields
// start at zero discount and are immediately re-priced against the
// current rule set before the call returns.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	if err := p.Validate(); err != nil {
		return models.Product{}, err
	}

	p.ID = s.newID()
	p.DiscountPercentage = 0
	p.DiscountedPrice = p.SellingPrice

	s.mu.Lock()
	s.products = append(s.products, p)
	s.recalculate()
	created := s.products[len(s.products)-1]
	s.mu.Unlock()

	s.changes.Record("product", "create", created.ID, created.Name)
	s.notify()
	return created, nil
}

// UpdateProduct replaces the product with the matching id. Discount
// fields supplied by the caller are discarded by the recalculation pass.
func (s *Store) UpdateProduct(p models.Product) (models.Product, error) {
	if err := p.Validate(); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Product{}, models.NewNotFoundError("product", p.ID)
	}
	s.products[idx] = p
	s.recalculate()
	updated := s.products[idx]
	s.mu.Unlock()

	s.changes.Record("product", "update", updated.ID, updated.Name)
	s.notify()
	return updated, nil
}

// DeleteProduct removes the product with the given id. Removal cannot
// change any other product's applicable rule, so no recalculation runs.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.NewNotFoundError("product", id)
	}
	name := s.products[idx].Name
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.mu.Unlock()

	s.changes.Record("product", "delete", id, name)
	s.notify()
	return nil
}

// AddCustomer validates and inserts a new customer.
func (s *Store) AddCustomer(c models.Customer) (models.Customer, error) {
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}

	c.ID = s.newID()
	s.mu.Lock()
	s.customers = append(s.customers, c)
	s.mu.Unlock()

	s.changes.Record("customer", "create", c.ID, c.Name)
	s.notify()
	return c, nil
}

// UpdateCustomer replaces the customer with the matching id.
func (s *Store) UpdateCustomer(c models.Customer) (models.Customer, error) {
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Customer{}, models.NewNotFoundError("customer", c.ID)
	}
	s.customers[idx] = c
	s.mu.Unlock()

	s.changes.Record("customer", "update", c.ID, c.Name)
	s.notify()
	return c, nil
}

// DeleteCustomer removes the customer with the given id.
func (s *Store) DeleteCustomer(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.NewNotFoundError("customer", id)
	}
	name := s.customers[idx].Name
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)
	s.mu.Unlock()

	s.changes.Record("customer", "delete", id, name)
	s.notify()
	return nil
}

// AddDiscountRule validates and inserts a new rule, then re-prices every
// product: a new threshold can change any product's winning rule.
func (s *Store) AddDiscountRule(r models.DiscountRule) (models.DiscountRule, error) {
	if err := r.Validate(); err != nil {
		return models.DiscountRule{}, err
	}

	r.ID = s.newID()
	s.mu.Lock()
	s.rules = append(s.rules, r)
	s.recalculate()
	s.mu.Unlock()

	s.changes.Record("discount_rule", "create", r.ID, ruleDetail(r))
	s.notify()
	return r, nil
}

// UpdateDiscountRule replaces the rule with the matching id and re-prices
// every product.
func (s *Store) UpdateDiscountRule(r models.DiscountRule) (models.DiscountRule, error) {
	if err := r.Validate(); err != nil {
		return models.DiscountRule{}, err
	}

	s.mu.Lock()
	idx := -1
	for i := range s.rules {
		if s.rules[i].ID == r.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.DiscountRule{}, models.NewNotFoundError("discount rule", r.ID)
	}
	s.rules[idx] = r
	s.recalculate()
	s.mu.Unlock()

	s.changes.Record("discount_rule", "update", r.ID, ruleDetail(r))
	s.notify()
	return r, nil
}

// DeleteDiscountRule removes the rule with the given id and re-prices
// every product, since another rule may now win.
func (s *Store) DeleteDiscountRule(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.rules {
		if s.rules[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.NewNotFoundError("discount rule", id)
	}
	detail := ruleDetail(s.rules[idx])
	s.rules = append(s.rules[:idx], s.rules[idx+1:]...)
	s.recalculate()
	s.mu.Unlock()

	s.changes.Record("discount_rule", "delete", id, detail)
	s.notify()
	return nil
}

package handlers

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/pricing"
)

// CategoryBreakdown groups the catalog by category with stock value at
// full and discounted prices. Feeds the category pie/bar charts.
func (h *Handler) CategoryBreakdown(c *fiber.Ctx) error {
	type categorySummary struct {
		Name            string  `json:"name"`
		Count           int     `json:"count"`
		Value           float64 `json:"value"`
		DiscountedValue float64 `json:"discountedValue"`
	}

	byCategory := make(map[string]*categorySummary)
	for _, p := range h.store.Products() {
		s, ok := byCategory[p.Category]
		if !ok {
			s = &categorySummary{Name: p.Category}
			byCategory[p.Category] = s
		}
		s.Count++
		s.Value += p.SellingPrice * float64(p.QuantityInStock)
		s.DiscountedValue += p.DiscountedPrice * float64(p.QuantityInStock)
	}

	summaries := make([]categorySummary, 0, len(byCategory))
	for _, s := range byCategory {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return c.JSON(summaries)
}

// DiscountPerformance compares total catalog value before and after
// discounts.
func (h *Handler) DiscountPerformance(c *fiber.Ctx) error {
	var before, after float64
	for _, p := range h.store.Products() {
		before += p.SellingPrice * float64(p.QuantityInStock)
		after += p.DiscountedPrice * float64(p.QuantityInStock)
	}

	return c.JSON([]fiber.Map{
		{"name": "Value Before Discounts", "value": before},
		{"name": "Value After Discounts", "value": after},
	})
}

// RuleImpact reports, per rule in ascending threshold order, how many
// products that rule currently wins and the savings it generates. A
// product counts toward a rule when it sits inside the rule's window and
// carries exactly that rule's discount.
func (h *Handler) RuleImpact(c *fiber.Ctx) error {
	now := time.Now()
	products := h.store.Products()

	rules := h.store.DiscountRules()
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].DaysBeforeExpiry < rules[j].DaysBeforeExpiry
	})

	type ruleImpact struct {
		Name     string  `json:"name"`
		Discount float64 `json:"discount"`
		Products int     `json:"products"`
		Savings  float64 `json:"savings"`
	}

	impacts := make([]ruleImpact, 0, len(rules))
	for _, r := range rules {
		impact := ruleImpact{
			Name:     formatDays(r.DaysBeforeExpiry),
			Discount: r.DiscountPercentage,
		}
		for _, p := range products {
			days := pricing.DaysToExpiry(p.ExpiryDate, now)
			if days <= r.DaysBeforeExpiry && p.DiscountPercentage == r.DiscountPercentage {
				impact.Products++
				impact.Savings += (p.SellingPrice - p.DiscountedPrice) * float64(p.QuantityInStock)
			}
		}
		impacts = append(impacts, impact)
	}

	return c.JSON(impacts)
}

// CustomerDistance buckets customers by distance from the shop.
func (h *Handler) CustomerDistance(c *fiber.Ctx) error {
	type distanceBand struct {
		Range string `json:"range"`
		Count int    `json:"count"`
	}

	bands := []distanceBand{
		{Range: "< 1 km"},
		{Range: "1-2 km"},
		{Range: "2-5 km"},
		{Range: "> 5 km"},
	}

	for _, customer := range h.store.Customers() {
		switch {
		case customer.Distance < 1:
			bands[0].Count++
		case customer.Distance < 2:
			bands[1].Count++
		case customer.Distance <= 5:
			bands[2].Count++
		default:
			bands[3].Count++
		}
	}

	return c.JSON(bands)
}

// ExpiryTimeline reports, for each of the next `months` calendar months
// (default 6, starting with the current month), how many products expire
// and the full-price stock value at risk. Feeds the two-series timeline
// chart.
func (h *Handler) ExpiryTimeline(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	if months < 1 {
		months = 1
	}
	now := time.Now()
	products := h.store.Products()

	type monthBucket struct {
		Name  string  `json:"name"`
		Count int     `json:"count"`
		Value float64 `json:"value"`
	}

	buckets := make([]monthBucket, 0, months)
	for i := 0; i < months; i++ {
		// First of month avoids end-of-month rollover when stepping forward.
		month := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		bucket := monthBucket{Name: month.Format("Jan 2006")}
		for _, p := range products {
			if p.ExpiryDate.Month() == month.Month() && p.ExpiryDate.Year() == month.Year() {
				bucket.Count++
				bucket.Value += p.SellingPrice * float64(p.QuantityInStock)
			}
		}
		buckets = append(buckets, bucket)
	}

	return c.JSON(buckets)
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

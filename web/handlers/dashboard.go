package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/models"
	"github.com/vijaykr338/ShopEase/pricing"
)

// DashboardStats returns the aggregate statistics for the dashboard
// cards. Always recomputed from the live collections.
func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.store.DashboardStats())
}

// ExpiringProducts returns products expiring within the next `days`
// (default 30), soonest first, capped at `limit` items when given.
// Already-expired items are excluded here; this feeds the dashboard's
// "act now" list, not the expiring-items count.
func (h *Handler) ExpiringProducts(c *fiber.Ctx) error {
	window := c.QueryInt("days", 30)
	limit := c.QueryInt("limit", 0)
	now := time.Now()

	type expiringProduct struct {
		models.Product
		DaysToExpiry int `json:"daysToExpiry"`
	}

	var expiring []expiringProduct
	for _, p := range h.store.Products() {
		days := pricing.DaysToExpiry(p.ExpiryDate, now)
		if days > 0 && days <= window {
			expiring = append(expiring, expiringProduct{Product: p, DaysToExpiry: days})
		}
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].DaysToExpiry < expiring[j].DaysToExpiry
	})
	if limit > 0 && len(expiring) > limit {
		expiring = expiring[:limit]
	}

	return c.JSON(expiring)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/models"
)

// DiscountRuleList returns all discount rules.
func (h *Handler) DiscountRuleList(c *fiber.Ctx) error {
	return c.JSON(h.store.DiscountRules())
}

// DiscountRuleCreate creates a new discount rule. Every product is
// re-priced before the response is written, so a follow-up read of the
// catalog already reflects the new rule.
func (h *Handler) DiscountRuleCreate(c *fiber.Ctx) error {
	var rule models.DiscountRule
	if err := c.BodyParser(&rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	created, err := h.store.AddDiscountRule(rule)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Discount rule created",
		"rule":    created,
	})
}

// DiscountRuleUpdate replaces an existing discount rule by id.
func (h *Handler) DiscountRuleUpdate(c *fiber.Ctx) error {
	var rule models.DiscountRule
	if err := c.BodyParser(&rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}
	rule.ID = c.Params("id")

	updated, err := h.store.UpdateDiscountRule(rule)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Discount rule updated",
		"rule":    updated,
	})
}

// DiscountRuleDelete removes a discount rule by id and re-prices the
// catalog against the remaining rules.
func (h *Handler) DiscountRuleDelete(c *fiber.Ctx) error {
	if err := h.store.DeleteDiscountRule(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Discount rule deleted",
	})
}

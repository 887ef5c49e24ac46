package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/models"
)

// CustomerList returns all customers.
func (h *Handler) CustomerList(c *fiber.Ctx) error {
	return c.JSON(h.store.Customers())
}

// CustomerCreate creates a new customer.
func (h *Handler) CustomerCreate(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	created, err := h.store.AddCustomer(customer)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Customer created",
		"customer": created,
	})
}

// CustomerUpdate replaces an existing customer by id.
func (h *Handler) CustomerUpdate(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}
	customer.ID = c.Params("id")

	updated, err := h.store.UpdateCustomer(customer)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Customer updated",
		"customer": updated,
	})
}

// CustomerDelete removes a customer by id.
func (h *Handler) CustomerDelete(c *fiber.Ctx) error {
	if err := h.store.DeleteCustomer(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Customer deleted",
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/models"
)

// ProductList returns the current product catalog, already priced.
func (h *Handler) ProductList(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// ProductCreate creates a new product. Discount fields in the request
// body are ignored; the store derives them.
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	created, err := h.store.AddProduct(product)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created",
		"product": created,
	})
}

// ProductUpdate replaces an existing product by id.
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}
	product.ID = c.Params("id")

	updated, err := h.store.UpdateProduct(product)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated",
		"product": updated,
	})
}

// ProductDelete removes a product by id.
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted",
	})
}

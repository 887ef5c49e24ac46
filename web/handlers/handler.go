// Package handlers implements the JSON API handlers. The store is
// injected explicitly; handlers never reach for ambient state.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vijaykr338/ShopEase/models"
	"github.com/vijaykr338/ShopEase/store"
)

// Handler carries the store every endpoint reads from and mutates.
type Handler struct {
	store *store.Store
}

// New creates a Handler around the given store.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// fail maps store errors onto the JSON error envelope: validation
// failures are the client's fault, missing ids are 404, anything else
// bubbles to the app error handler.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case models.IsValidation(err):
		status = fiber.StatusBadRequest
	case models.IsNotFound(err):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// GetChangeLog returns recent store mutations as JSON
func (h *Handler) GetChangeLog(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 20)
	return c.JSON(h.store.Changes().Recent(n))
}

// ClearChangeLog clears the store mutation log
func (h *Handler) ClearChangeLog(c *fiber.Ctx) error {
	h.store.Changes().Clear()
	return c.SendStatus(fiber.StatusOK)
}

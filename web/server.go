// Package web wires the store to the JSON API the dashboard SPA consumes.
package web

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vijaykr338/ShopEase/store"
	"github.com/vijaykr338/ShopEase/web/handlers"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server around the given store.
func NewServer(s *store.Store) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}

			// Log error details to console
			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	setupRoutes(app, handlers.New(s))

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	// Product management
	products := api.Group("/products")
	products.Get("/", h.ProductList)
	products.Post("/", h.ProductCreate)
	products.Put("/:id", h.ProductUpdate)
	products.Delete("/:id", h.ProductDelete)

	// Customer management
	customers := api.Group("/customers")
	customers.Get("/", h.CustomerList)
	customers.Post("/", h.CustomerCreate)
	customers.Put("/:id", h.CustomerUpdate)
	customers.Delete("/:id", h.CustomerDelete)

	// Discount rules management
	rules := api.Group("/discount-rules")
	rules.Get("/", h.DiscountRuleList)
	rules.Post("/", h.DiscountRuleCreate)
	rules.Put("/:id", h.DiscountRuleUpdate)
	rules.Delete("/:id", h.DiscountRuleDelete)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", h.DashboardStats)
	dashboard.Get("/expiring", h.ExpiringProducts)

	// Reports and statistics
	analytics := api.Group("/analytics")
	analytics.Get("/categories", h.CategoryBreakdown)
	analytics.Get("/discount-performance", h.DiscountPerformance)
	analytics.Get("/rule-impact", h.RuleImpact)
	analytics.Get("/customer-distance", h.CustomerDistance)
	analytics.Get("/expiry-timeline", h.ExpiryTimeline)

	// Debug endpoint for the mutation change log
	api.Get("/debug/changes", h.GetChangeLog)
	api.Delete("/debug/changes", h.ClearChangeLog)
}

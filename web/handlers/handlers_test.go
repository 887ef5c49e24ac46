package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaykr338/ShopEase/models"
	"github.com/vijaykr338/ShopEase/store"
)

func newTestApp(s *store.Store) *fiber.App {
	app := fiber.New()
	h := New(s)

	api := app.Group("/api")
	api.Get("/products", h.ProductList)
	api.Post("/products", h.ProductCreate)
	api.Put("/products/:id", h.ProductUpdate)
	api.Delete("/products/:id", h.ProductDelete)
	api.Get("/customers", h.CustomerList)
	api.Post("/customers", h.CustomerCreate)
	api.Get("/discount-rules", h.DiscountRuleList)
	api.Post("/discount-rules", h.DiscountRuleCreate)
	api.Delete("/discount-rules/:id", h.DiscountRuleDelete)
	api.Get("/dashboard/stats", h.DashboardStats)
	api.Get("/dashboard/expiring", h.ExpiringProducts)
	api.Get("/analytics/categories", h.CategoryBreakdown)
	api.Get("/analytics/discount-performance", h.DiscountPerformance)
	api.Get("/analytics/expiry-timeline", h.ExpiryTimeline)
	api.Get("/debug/changes", h.GetChangeLog)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func productBody(name string, daysToExpiry int, price float64, quantity int) fiber.Map {
	now := time.Now()
	return fiber.Map{
		"name":              name,
		"category":          "Dairy",
		"quantityInStock":   quantity,
		"manufacturingDate": now.AddDate(0, 0, -5).Format(time.RFC3339),
		"expiryDate":        now.AddDate(0, 0, daysToExpiry).Format(time.RFC3339),
		"costPrice":         price / 2,
		"sellingPrice":      price,
	}
}

func TestProductCRUDOverHTTP(t *testing.T) {
	s := store.New(store.Config{})
	app := newTestApp(s)

	// Create
	resp, payload := doJSON(t, app, "POST", "/api/products", productBody("Milk", 40, 2.50, 25))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool           `json:"success"`
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(payload, &created))
	assert.True(t, created.Success)
	require.NotEmpty(t, created.Product.ID)
	assert.Equal(t, 2.50, created.Product.DiscountedPrice, "no rules yet, full price")

	// List
	resp, payload = doJSON(t, app, "GET", "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []models.Product
	require.NoError(t, json.Unmarshal(payload, &products))
	require.Len(t, products, 1)

	// Update
	body := productBody("Milk", 40, 3.00, 20)
	resp, payload = doJSON(t, app, "PUT", "/api/products/"+created.Product.ID, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(payload, &updated))
	assert.Equal(t, 3.00, updated.Product.SellingPrice)
	assert.Equal(t, 20, updated.Product.QuantityInStock)

	// Delete
	resp, _ = doJSON(t, app, "DELETE", "/api/products/"+created.Product.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload = doJSON(t, app, "GET", "/api/products", nil)
	require.NoError(t, json.Unmarshal(payload, &products))
	assert.Empty(t, products)
}

func TestRuleCreationRepricesCatalog(t *testing.T) {
	s := store.New(store.Config{})
	app := newTestApp(s)

	_, payload := doJSON(t, app, "POST", "/api/products", productBody("Bread", 5, 2.00, 15))
	var created struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(payload, &created))
	assert.Equal(t, 0.0, created.Product.DiscountPercentage)

	resp, _ := doJSON(t, app, "POST", "/api/discount-rules", fiber.Map{
		"daysBeforeExpiry":   7,
		"discountPercentage": 50,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, payload = doJSON(t, app, "GET", "/api/products", nil)
	var products []models.Product
	require.NoError(t, json.Unmarshal(payload, &products))
	require.Len(t, products, 1)
	assert.Equal(t, 50.0, products[0].DiscountPercentage)
	assert.Equal(t, 1.00, products[0].DiscountedPrice)
}

func TestMutationErrorsMapToStatusCodes(t *testing.T) {
	s := store.New(store.Config{})
	app := newTestApp(s)

	// Unknown id -> 404
	resp, payload := doJSON(t, app, "PUT", "/api/products/no-such-id", productBody("X", 10, 1.00, 1))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "not found")

	// Invalid entity -> 400
	bad := productBody("Bad", 10, -5.00, 1)
	resp, _ = doJSON(t, app, "POST", "/api/products", bad)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/customers", fiber.Map{
		"name":                   "John",
		"distance":               1.0,
		"notificationPreference": "fax",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/discount-rules/no-such-id", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	s := store.New(store.Config{})
	s.Seed()
	app := newTestApp(s)

	resp, payload := doJSON(t, app, "GET", "/api/dashboard/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(payload, &stats))
	assert.Equal(t, len(s.Products()), stats.TotalProducts)
	assert.Equal(t, len(s.Customers()), stats.TotalCustomers)
	assert.Greater(t, stats.LossPrevented, 0.0, "seed catalog has discounted stock")
}

func TestExpiringProductsSortedSoonestFirst(t *testing.T) {
	s := store.New(store.Config{})
	app := newTestApp(s)

	for i, days := range []int{25, 3, 12} {
		_, payload := doJSON(t, app, "POST", "/api/products",
			productBody(fmt.Sprintf("P%d", i), days, 2.00, 5))
		var created struct {
			Success bool `json:"success"`
		}
		require.NoError(t, json.Unmarshal(payload, &created))
		require.True(t, created.Success)
	}
	// Far outside the default 30-day window.
	doJSON(t, app, "POST", "/api/products", productBody("Far", 120, 2.00, 5))

	resp, payload := doJSON(t, app, "GET", "/api/dashboard/expiring", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var expiring []struct {
		Name         string `json:"name"`
		DaysToExpiry int    `json:"daysToExpiry"`
	}
	require.NoError(t, json.Unmarshal(payload, &expiring))
	require.Len(t, expiring, 3)
	assert.Equal(t, "P1", expiring[0].Name)
	assert.Equal(t, "P2", expiring[1].Name)
	assert.Equal(t, "P0", expiring[2].Name)

	// A limit keeps only the soonest items.
	resp, payload = doJSON(t, app, "GET", "/api/dashboard/expiring?limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &expiring))
	require.Len(t, expiring, 2)
	assert.Equal(t, "P1", expiring[0].Name)
	assert.Equal(t, "P2", expiring[1].Name)
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := store.New(store.Config{})
	s.Seed()
	app := newTestApp(s)

	resp, payload := doJSON(t, app, "GET", "/api/analytics/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var categories []struct {
		Name            string  `json:"name"`
		Count           int     `json:"count"`
		Value           float64 `json:"value"`
		DiscountedValue float64 `json:"discountedValue"`
	}
	require.NoError(t, json.Unmarshal(payload, &categories))
	require.NotEmpty(t, categories)
	for _, c := range categories {
		assert.Greater(t, c.Count, 0)
		assert.LessOrEqual(t, c.DiscountedValue, c.Value)
	}

	resp, payload = doJSON(t, app, "GET", "/api/analytics/discount-performance", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var performance []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(payload, &performance))
	require.Len(t, performance, 2)
	assert.Less(t, performance[1].Value, performance[0].Value,
		"seeded catalog value drops after discounts")

	resp, payload = doJSON(t, app, "GET", "/api/analytics/expiry-timeline", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var timeline []struct {
		Name  string  `json:"name"`
		Count int     `json:"count"`
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(payload, &timeline))
	require.Len(t, timeline, 6)
	var totalCount int
	var totalValue float64
	for _, bucket := range timeline {
		totalCount += bucket.Count
		totalValue += bucket.Value
		if bucket.Count == 0 {
			assert.Zero(t, bucket.Value)
		}
	}
	assert.Equal(t, len(s.Products()), totalCount, "every seeded item expires within six months")
	var wantValue float64
	for _, p := range s.Products() {
		wantValue += p.SellingPrice * float64(p.QuantityInStock)
	}
	assert.InDelta(t, wantValue, totalValue, 1e-9)
}

func TestChangeLogEndpoint(t *testing.T) {
	s := store.New(store.Config{})
	app := newTestApp(s)

	doJSON(t, app, "POST", "/api/products", productBody("Milk", 40, 2.50, 25))

	resp, payload := doJSON(t, app, "GET", "/api/debug/changes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var changes []store.Change
	require.NoError(t, json.Unmarshal(payload, &changes))
	require.Len(t, changes, 1)
	assert.Equal(t, "product", changes[0].Entity)
	assert.Equal(t, "create", changes[0].Action)

	// A negative limit is an empty read, not an error.
	resp, payload = doJSON(t, app, "GET", "/api/debug/changes?limit=-1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &changes))
	assert.Empty(t, changes)
}

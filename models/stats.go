package models

// DashboardStats is a pure view over the current collections. It is never
// stored; the store recomputes it on every read.
type DashboardStats struct {
	LowStockItems  int     `json:"lowStockItems"`
	ExpiringItems  int     `json:"expiringItems"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	LossPrevented  float64 `json:"lossPrevented"`
}

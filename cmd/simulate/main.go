// Command simulate drives a seeded store through a burst of randomized
// mutations and prints the repriced catalog and stats after each step.
// Useful for eyeballing the discount engine without starting the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/vijaykr338/ShopEase/models"
	"github.com/vijaykr338/ShopEase/store"
)

func main() {
	var (
		steps   = flag.Int("steps", 10, "Number of random mutations to apply")
		rngSeed = flag.Int64("rng-seed", 0, "Random seed (0 = time-based)")
		verbose = flag.Bool("verbose", false, "Print the full catalog after every step")
	)
	flag.Parse()

	if *rngSeed == 0 {
		*rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*rngSeed))
	log.Printf("Simulation starting (rng-seed=%d)", *rngSeed)

	s := store.New(store.Config{})
	s.Seed()

	mutations := 0
	s.Subscribe(func() { mutations++ })

	printCatalog(s)

	for i := 0; i < *steps; i++ {
		fmt.Println()
		applyRandomMutation(s, rng, i)
		if *verbose {
			printCatalog(s)
		}
		printStats(s)
	}

	fmt.Println()
	printCatalog(s)
	log.Printf("Simulation done: %d steps, %d change notifications", *steps, mutations)
}

func applyRandomMutation(s *store.Store, rng *rand.Rand, step int) {
	switch rng.Intn(4) {
	case 0:
		days := 1 + rng.Intn(120)
		p, err := s.AddProduct(models.Product{
			Name:              fmt.Sprintf("Sim Product %d", step),
			Category:          randomCategory(rng),
			QuantityInStock:   rng.Intn(50),
			ManufacturingDate: time.Now().AddDate(0, 0, -rng.Intn(30)-1),
			ExpiryDate:        time.Now().AddDate(0, 0, days),
			CostPrice:         round(1 + rng.Float64()*4),
			SellingPrice:      round(2 + rng.Float64()*8),
		})
		if err != nil {
			log.Printf("add product failed: %v", err)
			return
		}
		fmt.Printf(">> added %q expiring in %d days: %.0f%% off, price %.2f\n",
			p.Name, days, p.DiscountPercentage, p.DiscountedPrice)

	case 1:
		rule, err := s.AddDiscountRule(models.DiscountRule{
			DaysBeforeExpiry:   []int{3, 7, 14, 30, 60, 90}[rng.Intn(6)],
			DiscountPercentage: float64(5 + 5*rng.Intn(18)),
		})
		if err != nil {
			log.Printf("add rule failed: %v", err)
			return
		}
		fmt.Printf(">> added rule: <=%d days -> %.0f%% off\n", rule.DaysBeforeExpiry, rule.DiscountPercentage)

	case 2:
		rules := s.DiscountRules()
		if len(rules) <= 1 {
			fmt.Println(">> skipped rule delete (keeping at least one rule)")
			return
		}
		victim := rules[rng.Intn(len(rules))]
		if err := s.DeleteDiscountRule(victim.ID); err != nil {
			log.Printf("delete rule failed: %v", err)
			return
		}
		fmt.Printf(">> deleted rule: <=%d days -> %.0f%% off\n", victim.DaysBeforeExpiry, victim.DiscountPercentage)

	default:
		products := s.Products()
		if len(products) == 0 {
			return
		}
		p := products[rng.Intn(len(products))]
		p.QuantityInStock = rng.Intn(60)
		if _, err := s.UpdateProduct(p); err != nil {
			log.Printf("update product failed: %v", err)
			return
		}
		fmt.Printf(">> restocked %q to %d units\n", p.Name, p.QuantityInStock)
	}
}

func printCatalog(s *store.Store) {
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("%-28s %-10s %8s %8s %8s\n", "PRODUCT", "CATEGORY", "PRICE", "DISC%", "NOW")
	for _, p := range s.Products() {
		fmt.Printf("%-28s %-10s %8.2f %7.0f%% %8.2f\n",
			p.Name, p.Category, p.SellingPrice, p.DiscountPercentage, p.DiscountedPrice)
	}
	fmt.Println(strings.Repeat("-", 72))
}

func printStats(s *store.Store) {
	stats := s.DashboardStats()
	fmt.Printf("   stats: products=%d customers=%d lowStock=%d expiring=%d lossPrevented=%.2f\n",
		stats.TotalProducts, stats.TotalCustomers, stats.LowStockItems, stats.ExpiringItems, stats.LossPrevented)
}

func randomCategory(rng *rand.Rand) string {
	categories := []string{"Dairy", "Bakery", "Meat", "Beverages", "Produce"}
	return categories[rng.Intn(len(categories))]
}

func round(v float64) float64 {
	return float64(int(v*100)) / 100
}

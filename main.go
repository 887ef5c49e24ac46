package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vijaykr338/ShopEase/config"
	"github.com/vijaykr338/ShopEase/store"
	"github.com/vijaykr338/ShopEase/web"
)

func main() {
	// Command line flags
	var (
		seed = flag.Bool("seed", true, "Load the built-in sample catalog on startup")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the in-memory store
	s := store.New(store.Config{
		LowStockThreshold:  cfg.Store.LowStockThreshold,
		ExpiringWindowDays: cfg.Store.ExpiringWindowDays,
	})
	if *seed {
		s.Seed()
	}

	// Create and start web server
	server := web.NewServer(s)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func showHelp() {
	log.Println(`
ShopEase Retail Dashboard Server

Usage:
  go run main.go [options]

Options:
  -seed=false  Start with an empty store instead of the sample catalog
  -help        Show this help message

Examples:
  # Start server with the sample catalog
  go run main.go

  # Start server empty
  go run main.go -seed=false

For an offline walkthrough of the discount engine, use:
  go run cmd/simulate/main.go`)
}

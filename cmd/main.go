package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/booking"
	"github.com/ukydev/garage-service/internal/cli"
	"github.com/ukydev/garage-service/internal/config"
	"github.com/ukydev/garage-service/internal/store"
)

func main() {
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.DataDir, err)
	}

	customers := store.NewCustomerStore(cfg.CustomersFile)
	vehicles := store.NewVehicleStore(cfg.VehiclesFile)
	services := store.NewServiceStore(cfg.ServicesFile)
	discounts := store.NewDiscountStore(cfg.DiscountsFile)
	history := store.NewHistoryStore(cfg.HistoryFile)

	// The booking flow relies on both catalogs having entries.
	if err := services.EnsureDefaults(); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	if err := discounts.EnsureDefaults(); err != nil {
		log.Fatalf("Failed to seed discounts: %v", err)
	}

	engine := booking.NewEngine(customers, vehicles, services, discounts, history)
	app := cli.New(os.Stdin, os.Stdout, customers, vehicles, services, discounts, history, engine)
	app.Run()
}
